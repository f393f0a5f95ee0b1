package export

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Arabic is rendered with Arabic-Indic digits, English with Latin ones.
var (
	Arabic  = language.MustParse("ar-u-nu-arab")
	English = language.MustParse("en-u-nu-latn")
)

// Translations maps a message key to its text per language.
type Translations map[string]map[language.Tag]string

func newCatalog(t Translations) catalog.Catalog {
	ctlg := catalog.NewBuilder(catalog.Fallback(English))
	for key, langs := range t {
		for lang, text := range langs {
			if err := ctlg.SetString(lang, key, text); err != nil {
				panic(err)
			}
		}
	}
	return ctlg
}

func ar(arabic, english string) map[language.Tag]string {
	return map[language.Tag]string{Arabic: arabic, English: english}
}

var messages = Translations{
	// sheets
	"sheet.products":  ar("المنتجات", "Products"),
	"sheet.orders":    ar("الطلبات", "Orders"),
	"sheet.users":     ar("المستخدمين", "Users"),
	"sheet.suppliers": ar("الموردين", "Suppliers"),
	"sheet.employees": ar("الموظفين", "Employees"),
	"sheet.dashboard": ar("لوحة التحكم", "Dashboard"),

	// columns
	"column.order_id":      ar("رقم الطلب", "Order ID"),
	"column.name":          ar("الاسم", "Name"),
	"column.category":      ar("التصنيف", "Category"),
	"column.price":         ar("السعر", "Price"),
	"column.stock":         ar("المخزون", "Stock"),
	"column.sales":         ar("المبيعات", "Sales"),
	"column.owner":         ar("صاحب الطلب", "Owner"),
	"column.total":         ar("المجموع", "Total"),
	"column.status":        ar("الحالة", "Status"),
	"column.date":          ar("التاريخ", "Date"),
	"column.email":         ar("البريد الإلكتروني", "Email"),
	"column.points":        ar("النقاط", "Points"),
	"column.join_date":     ar("تاريخ الانضمام", "Join date"),
	"column.last_activity": ar("تاريخ أخر معاملة", "Last activity"),
	"column.country":       ar("الدولة", "Country"),
	"column.income":        ar("الدخل", "Income"),

	// product categories
	"category.MEAT":   ar("لحوم", "Meat"),
	"category.DAIRY":  ar("منتجات الألبان", "Dairy"),
	"category.SNACKS": ar("سناكس", "Snacks"),
	"category.OTHER":  ar("أخرى", "Other"),

	// order statuses
	"order_status.PENDING":   ar("قيد المعالجة", "Pending"),
	"order_status.DELIVERED": ar("تم التسليم", "Delivered"),

	// user statuses
	"user_status.ACTIVE":   ar("نشط", "Active"),
	"user_status.INACTIVE": ar("غير نشط", "Inactive"),

	// countries
	"country.EG": ar("مصر", "Egypt"),
	"country.SA": ar("السعودية", "Saudi Arabia"),
	"country.AE": ar("الإمارات", "United Arab Emirates"),
	"country.DZ": ar("الجزائر", "Algeria"),
	"country.MA": ar("المغرب", "Morocco"),
	"country.IQ": ar("العراق", "Iraq"),
	"country.KW": ar("الكويت", "Kuwait"),
	"country.QA": ar("قطر", "Qatar"),
	"country.OM": ar("عُمان", "Oman"),
	"country.LB": ar("لبنان", "Lebanon"),
	"country.SY": ar("سوريا", "Syria"),
	"country.JO": ar("الأردن", "Jordan"),
	"country.YE": ar("اليمن", "Yemen"),
	"country.LY": ar("ليبيا", "Libya"),
	"country.TN": ar("تونس", "Tunisia"),
	"country.SD": ar("السودان", "Sudan"),
	"country.SO": ar("الصومال", "Somalia"),
	"country.MR": ar("موريتانيا", "Mauritania"),
	"country.BH": ar("البحرين", "Bahrain"),
	"country.PS": ar("فلسطين", "Palestine"),
}
