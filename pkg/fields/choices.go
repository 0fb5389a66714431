package fields

import "fmt"

// Fixed choice tables backing the table-driven field types. The tables are
// immutable after process start; ResolveOptions returns them by reference so
// callers must not mutate the result.
//
// Key conventions: short/ISO variants key by code ("US", "Jan", "1"), full
// variants key by the full name ("United States", "January", "Monday"). The
// descriptor's Format field selects which table contributes both the render
// options and the inferred valid choice keys.

var (
	choicesAmPm = Options{
		{Value: "am", Label: "AM"},
		{Value: "pm", Label: "PM"},
	}

	choicesOnOff = Options{
		{Value: "on", Label: "On"},
		{Value: "off", Label: "Off"},
	}

	choicesYesNo = Options{
		{Value: "yes", Label: "Yes"},
		{Value: "no", Label: "No"},
	}

	choicesEnableDisable = Options{
		{Value: "enable", Label: "Enable"},
		{Value: "disable", Label: "Disable"},
	}

	choicesEnabledDisabled = Options{
		{Value: "enabled", Label: "Enabled"},
		{Value: "disabled", Label: "Disabled"},
	}

	choicesMonth      Options
	choicesMonthShort Options
	choicesMonthFull  Options

	choicesWeekday      Options
	choicesWeekdayShort Options
	choicesWeekdayFull  Options

	choicesDay    Options
	choicesMinute Options
	choicesHour12 Options
	choicesHour24 Options

	choicesState     Options
	choicesStateFull Options

	choicesCountry     Options
	choicesCountryFull Options
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func init() {
	for i, name := range monthNames {
		number := fmt.Sprintf("%d", i+1)
		short := name[:3]
		choicesMonth = append(choicesMonth, Choice{Value: number, Label: number})
		choicesMonthShort = append(choicesMonthShort, Choice{Value: short, Label: short})
		choicesMonthFull = append(choicesMonthFull, Choice{Value: name, Label: name})
	}

	for _, name := range weekdayNames {
		lower := toLower(name)
		short := name[:3]
		choicesWeekday = append(choicesWeekday, Choice{Value: lower, Label: name})
		choicesWeekdayShort = append(choicesWeekdayShort, Choice{Value: short, Label: short})
		choicesWeekdayFull = append(choicesWeekdayFull, Choice{Value: name, Label: name})
	}

	for day := 1; day <= 31; day++ {
		value := fmt.Sprintf("%d", day)
		choicesDay = append(choicesDay, Choice{Value: value, Label: value})
	}

	for minute := 0; minute < 60; minute++ {
		value := fmt.Sprintf("%02d", minute)
		choicesMinute = append(choicesMinute, Choice{Value: value, Label: value})
	}

	for hour := 1; hour <= 12; hour++ {
		value := fmt.Sprintf("%d", hour)
		choicesHour12 = append(choicesHour12, Choice{Value: value, Label: value})
	}

	for hour := 0; hour < 24; hour++ {
		value := fmt.Sprintf("%02d", hour)
		choicesHour24 = append(choicesHour24, Choice{Value: value, Label: value})
	}

	for _, state := range usStates {
		choicesState = append(choicesState, Choice{Value: state.code, Label: state.code})
		choicesStateFull = append(choicesStateFull, Choice{Value: state.name, Label: state.name})
	}

	for _, country := range countries {
		choicesCountry = append(choicesCountry, Choice{Value: country.code, Label: country.code})
		choicesCountryFull = append(choicesCountryFull, Choice{Value: country.name, Label: country.name})
	}
}

func toLower(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] >= 'A' && out[i] <= 'Z' {
			out[i] += 'a' - 'A'
		}
	}
	return string(out)
}

type codedName struct {
	code string
	name string
}

var usStates = []codedName{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"},
	{"DE", "Delaware"}, {"DC", "District of Columbia"}, {"FL", "Florida"},
	{"GA", "Georgia"}, {"HI", "Hawaii"}, {"ID", "Idaho"}, {"IL", "Illinois"},
	{"IN", "Indiana"}, {"IA", "Iowa"}, {"KS", "Kansas"}, {"KY", "Kentucky"},
	{"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"},
	{"NE", "Nebraska"}, {"NV", "Nevada"}, {"NH", "New Hampshire"},
	{"NJ", "New Jersey"}, {"NM", "New Mexico"}, {"NY", "New York"},
	{"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
	{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"},
	{"RI", "Rhode Island"}, {"SC", "South Carolina"}, {"SD", "South Dakota"},
	{"TN", "Tennessee"}, {"TX", "Texas"}, {"UT", "Utah"}, {"VT", "Vermont"},
	{"VA", "Virginia"}, {"WA", "Washington"}, {"WV", "West Virginia"},
	{"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

var countries = []codedName{
	{"AF", "Afghanistan"}, {"AL", "Albania"}, {"DZ", "Algeria"},
	{"AD", "Andorra"}, {"AO", "Angola"}, {"AG", "Antigua and Barbuda"},
	{"AR", "Argentina"}, {"AM", "Armenia"}, {"AU", "Australia"},
	{"AT", "Austria"}, {"AZ", "Azerbaijan"}, {"BS", "Bahamas"},
	{"BH", "Bahrain"}, {"BD", "Bangladesh"}, {"BB", "Barbados"},
	{"BY", "Belarus"}, {"BE", "Belgium"}, {"BZ", "Belize"}, {"BJ", "Benin"},
	{"BT", "Bhutan"}, {"BO", "Bolivia"}, {"BA", "Bosnia and Herzegovina"},
	{"BW", "Botswana"}, {"BR", "Brazil"}, {"BN", "Brunei"},
	{"BG", "Bulgaria"}, {"BF", "Burkina Faso"}, {"BI", "Burundi"},
	{"KH", "Cambodia"}, {"CM", "Cameroon"}, {"CA", "Canada"},
	{"CV", "Cape Verde"}, {"CF", "Central African Republic"}, {"TD", "Chad"},
	{"CL", "Chile"}, {"CN", "China"}, {"CO", "Colombia"}, {"KM", "Comoros"},
	{"CG", "Congo"}, {"CD", "Congo, Democratic Republic of the"},
	{"CR", "Costa Rica"}, {"CI", "Cote d'Ivoire"}, {"HR", "Croatia"},
	{"CU", "Cuba"}, {"CY", "Cyprus"}, {"CZ", "Czech Republic"},
	{"DK", "Denmark"}, {"DJ", "Djibouti"}, {"DM", "Dominica"},
	{"DO", "Dominican Republic"}, {"EC", "Ecuador"}, {"EG", "Egypt"},
	{"SV", "El Salvador"}, {"GQ", "Equatorial Guinea"}, {"ER", "Eritrea"},
	{"EE", "Estonia"}, {"SZ", "Eswatini"}, {"ET", "Ethiopia"},
	{"FJ", "Fiji"}, {"FI", "Finland"}, {"FR", "France"}, {"GA", "Gabon"},
	{"GM", "Gambia"}, {"GE", "Georgia"}, {"DE", "Germany"}, {"GH", "Ghana"},
	{"GR", "Greece"}, {"GD", "Grenada"}, {"GT", "Guatemala"},
	{"GN", "Guinea"}, {"GW", "Guinea-Bissau"}, {"GY", "Guyana"},
	{"HT", "Haiti"}, {"HN", "Honduras"}, {"HU", "Hungary"},
	{"IS", "Iceland"}, {"IN", "India"}, {"ID", "Indonesia"}, {"IR", "Iran"},
	{"IQ", "Iraq"}, {"IE", "Ireland"}, {"IL", "Israel"}, {"IT", "Italy"},
	{"JM", "Jamaica"}, {"JP", "Japan"}, {"JO", "Jordan"},
	{"KZ", "Kazakhstan"}, {"KE", "Kenya"}, {"KI", "Kiribati"},
	{"KP", "Korea, North"}, {"KR", "Korea, South"}, {"KW", "Kuwait"},
	{"KG", "Kyrgyzstan"}, {"LA", "Laos"}, {"LV", "Latvia"},
	{"LB", "Lebanon"}, {"LS", "Lesotho"}, {"LR", "Liberia"},
	{"LY", "Libya"}, {"LI", "Liechtenstein"}, {"LT", "Lithuania"},
	{"LU", "Luxembourg"}, {"MG", "Madagascar"}, {"MW", "Malawi"},
	{"MY", "Malaysia"}, {"MV", "Maldives"}, {"ML", "Mali"}, {"MT", "Malta"},
	{"MH", "Marshall Islands"}, {"MR", "Mauritania"}, {"MU", "Mauritius"},
	{"MX", "Mexico"}, {"FM", "Micronesia"}, {"MD", "Moldova"},
	{"MC", "Monaco"}, {"MN", "Mongolia"}, {"ME", "Montenegro"},
	{"MA", "Morocco"}, {"MZ", "Mozambique"}, {"MM", "Myanmar"},
	{"NA", "Namibia"}, {"NR", "Nauru"}, {"NP", "Nepal"},
	{"NL", "Netherlands"}, {"NZ", "New Zealand"}, {"NI", "Nicaragua"},
	{"NE", "Niger"}, {"NG", "Nigeria"}, {"MK", "North Macedonia"},
	{"NO", "Norway"}, {"OM", "Oman"}, {"PK", "Pakistan"}, {"PW", "Palau"},
	{"PA", "Panama"}, {"PG", "Papua New Guinea"}, {"PY", "Paraguay"},
	{"PE", "Peru"}, {"PH", "Philippines"}, {"PL", "Poland"},
	{"PT", "Portugal"}, {"QA", "Qatar"}, {"RO", "Romania"},
	{"RU", "Russia"}, {"RW", "Rwanda"}, {"KN", "Saint Kitts and Nevis"},
	{"LC", "Saint Lucia"}, {"VC", "Saint Vincent and the Grenadines"},
	{"WS", "Samoa"}, {"SM", "San Marino"}, {"ST", "Sao Tome and Principe"},
	{"SA", "Saudi Arabia"}, {"SN", "Senegal"}, {"RS", "Serbia"},
	{"SC", "Seychelles"}, {"SL", "Sierra Leone"}, {"SG", "Singapore"},
	{"SK", "Slovakia"}, {"SI", "Slovenia"}, {"SB", "Solomon Islands"},
	{"SO", "Somalia"}, {"ZA", "South Africa"}, {"SS", "South Sudan"},
	{"ES", "Spain"}, {"LK", "Sri Lanka"}, {"SD", "Sudan"},
	{"SR", "Suriname"}, {"SE", "Sweden"}, {"CH", "Switzerland"},
	{"SY", "Syria"}, {"TW", "Taiwan"}, {"TJ", "Tajikistan"},
	{"TZ", "Tanzania"}, {"TH", "Thailand"}, {"TL", "Timor-Leste"},
	{"TG", "Togo"}, {"TO", "Tonga"}, {"TT", "Trinidad and Tobago"},
	{"TN", "Tunisia"}, {"TR", "Turkey"}, {"TM", "Turkmenistan"},
	{"TV", "Tuvalu"}, {"UG", "Uganda"}, {"UA", "Ukraine"},
	{"AE", "United Arab Emirates"}, {"GB", "United Kingdom"},
	{"US", "United States"}, {"UY", "Uruguay"}, {"UZ", "Uzbekistan"},
	{"VU", "Vanuatu"}, {"VA", "Vatican City"}, {"VE", "Venezuela"},
	{"VN", "Vietnam"}, {"YE", "Yemen"}, {"ZM", "Zambia"},
	{"ZW", "Zimbabwe"},
}
