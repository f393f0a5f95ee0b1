package domain

// EntityType identifies one of the dashboard collections.
type EntityType string

const (
	EntityTypeProduct  EntityType = "products"
	EntityTypeOrder    EntityType = "orders"
	EntityTypeUser     EntityType = "users"
	EntityTypeSupplier EntityType = "suppliers"
	EntityTypeEmployee EntityType = "employees"
)

// EntityTypes lists every collection in navigation order.
var EntityTypes = []EntityType{
	EntityTypeProduct, EntityTypeOrder, EntityTypeUser, EntityTypeSupplier, EntityTypeEmployee,
}

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProduct, EntityTypeOrder, EntityTypeUser, EntityTypeSupplier, EntityTypeEmployee:
		return true
	}
	return false
}

// ProductCategory is the fixed product classification.
type ProductCategory string

const (
	ProductCategoryMeat   ProductCategory = "MEAT"
	ProductCategoryDairy  ProductCategory = "DAIRY"
	ProductCategorySnacks ProductCategory = "SNACKS"
	ProductCategoryOther  ProductCategory = "OTHER"
)

func (c ProductCategory) String() string { return string(c) }

func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategoryMeat, ProductCategoryDairy, ProductCategorySnacks, ProductCategoryOther:
		return true
	}
	return false
}

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered:
		return true
	}
	return false
}

// UserStatus marks a customer account as active or not.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

// Country is the ISO 3166-1 alpha-2 code of a supplier's country.
type Country string

const (
	CountryEgypt       Country = "EG"
	CountrySaudiArabia Country = "SA"
	CountryUAE         Country = "AE"
	CountryAlgeria     Country = "DZ"
	CountryMorocco     Country = "MA"
	CountryIraq        Country = "IQ"
	CountryKuwait      Country = "KW"
	CountryQatar       Country = "QA"
	CountryOman        Country = "OM"
	CountryLebanon     Country = "LB"
	CountrySyria       Country = "SY"
	CountryJordan      Country = "JO"
	CountryYemen       Country = "YE"
	CountryLibya       Country = "LY"
	CountryTunisia     Country = "TN"
	CountrySudan       Country = "SD"
	CountrySomalia     Country = "SO"
	CountryMauritania  Country = "MR"
	CountryBahrain     Country = "BH"
	CountryPalestine   Country = "PS"
)

// Countries lists the supported supplier countries in display order.
var Countries = []Country{
	CountryEgypt, CountrySaudiArabia, CountryUAE, CountryAlgeria, CountryMorocco,
	CountryIraq, CountryKuwait, CountryQatar, CountryOman, CountryLebanon,
	CountrySyria, CountryJordan, CountryYemen, CountryLibya, CountryTunisia,
	CountrySudan, CountrySomalia, CountryMauritania, CountryBahrain, CountryPalestine,
}

func (c Country) String() string { return string(c) }

func (c Country) IsValid() bool {
	for _, known := range Countries {
		if c == known {
			return true
		}
	}
	return false
}

// UserRole represents the authorization level carried in access tokens.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
