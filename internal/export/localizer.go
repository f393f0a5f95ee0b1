package export

import (
	"fmt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	labels      = newCatalog(messages)
	allPrinters = []*message.Printer{
		message.NewPrinter(Arabic, message.Catalog(labels)),
		message.NewPrinter(English, message.Catalog(labels)),
	}
)

// Localizer renders labels and dates for one export language.
type Localizer struct {
	tag      language.Tag
	printer  *message.Printer
	dayFirst bool
}

// NewLocalizer returns a localizer for a BCP 47 locale. Only Arabic and
// English are supported; regional variants map to their base language.
func NewLocalizer(locale string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, domain.NewValidationError("locale", fmt.Sprintf("invalid locale %q", locale))
	}

	base, _ := tag.Base()
	switch base.String() {
	case "ar":
		tag = Arabic
	case "en":
		tag = English
	default:
		return nil, domain.NewValidationError("locale", fmt.Sprintf("unsupported locale %q", locale))
	}

	return &Localizer{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(labels)),
		dayFirst: tag == Arabic,
	}, nil
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// RightToLeft reports whether sheets should be laid out right to left.
func (l *Localizer) RightToLeft() bool { return l.tag == Arabic }

// Label translates a message key. Unknown keys are returned as is.
func (l *Localizer) Label(key string) string {
	return l.printer.Sprintf(key)
}

// LabelsOf returns the label of key in every supported language.
func LabelsOf(key string) []string {
	out := make([]string, 0, len(allPrinters))
	for _, p := range allPrinters {
		out = append(out, p.Sprintf(key))
	}
	return out
}

// Date renders d as a short numeric date: D/M/YYYY in Arabic, M/D/YYYY in
// English. The zero date renders empty.
func (l *Localizer) Date(d domain.Date) string {
	if d.IsZero() {
		return ""
	}

	y, m, dd := d.Date()
	year := number.Decimal(y, number.NoSeparator())
	month := number.Decimal(int(m))
	day := number.Decimal(dd)

	if l.dayFirst {
		return l.printer.Sprintf("%v/%v/%v", day, month, year)
	}
	return l.printer.Sprintf("%v/%v/%v", month, day, year)
}
