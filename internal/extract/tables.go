package extract

// rule maps a lower-cased surface form to its canonical value. Rules
// are evaluated in slice order and the first match wins; later entries
// in the same table are never consulted.
type rule struct {
	term  string
	value string
}

var productTypeRules = []rule{
	{"shoe", "footwear"},
	{"shoes", "footwear"},
	{"sneaker", "footwear"},
	{"sneakers", "footwear"},
	{"boot", "footwear"},
	{"boots", "footwear"},
	{"sandal", "footwear"},
	{"sandals", "footwear"},
}

var brandRules = []rule{
	{"adidas", "Adidas"},
	{"nike", "Nike"},
	{"apple", "Apple"},
	{"michael kors", "Michael Kors"},
	{"fossil", "Fossil"},
	{"gucci", "Gucci"},
	{"samsung", "Samsung"},
	{"sony", "Sony"},
	{"amazon", "Amazon"},
	{"coach", "Coach"},
}

var colorRules = []rule{
	{"red", "Red"},
	{"blue", "Blue"},
	{"grey", "Grey"},
	{"gray", "Grey"},
	{"brown", "Brown"},
	{"multi", "Multi-color"},
	{"black", "Black"},
	{"white", "White"},
	{"green", "Green"},
	{"yellow", "Yellow"},
	{"orange", "Orange"},
	{"purple", "Purple"},
	{"pink", "Pink"},
}

// genderRules groups synonyms: any term in a group maps to its value.
var genderRules = []struct {
	terms []string
	value string
}{
	{[]string{"men", "male"}, "Male"},
	{[]string{"women", "female"}, "Female"},
	{[]string{"kids", "children"}, "Kids"},
	{[]string{"unisex"}, "Unisex"},
}

var ageGroupRules = []rule{
	{"adult", "Adult"},
	{"youth", "Youth"},
}
