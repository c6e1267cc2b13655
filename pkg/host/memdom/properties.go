package memdom

// propSpec describes an intrinsic element property.
type propSpec struct {
	// attr is the reflected attribute name, "" if the property is not
	// reflected.
	attr string

	// boolean properties reflect as a present/absent attribute.
	boolean bool
}

// globalProps are intrinsic on every element.
var globalProps = map[string]propSpec{
	"id":          {attr: "id"},
	"className":   {attr: "class"},
	"title":       {attr: "title"},
	"lang":        {attr: "lang"},
	"dir":         {attr: "dir"},
	"hidden":      {attr: "hidden", boolean: true},
	"tabIndex":    {attr: "tabindex"},
	"textContent": {},
	"innerText":   {},
}

// tagProps are intrinsic on specific tags.
var tagProps = map[string]map[string]propSpec{
	"input": {
		"value":       {},
		"checked":     {},
		"disabled":    {attr: "disabled", boolean: true},
		"type":        {attr: "type"},
		"name":        {attr: "name"},
		"placeholder": {attr: "placeholder"},
		"readOnly":    {attr: "readonly", boolean: true},
	},
	"textarea": {
		"value":       {},
		"disabled":    {attr: "disabled", boolean: true},
		"name":        {attr: "name"},
		"placeholder": {attr: "placeholder"},
	},
	"select": {
		"value":    {},
		"disabled": {attr: "disabled", boolean: true},
		"name":     {attr: "name"},
	},
	"option": {
		"value":    {attr: "value"},
		"selected": {},
		"disabled": {attr: "disabled", boolean: true},
	},
	"button": {
		"disabled": {attr: "disabled", boolean: true},
		"type":     {attr: "type"},
		"name":     {attr: "name"},
		"value":    {attr: "value"},
	},
	"a": {
		"href":   {attr: "href"},
		"target": {attr: "target"},
		"rel":    {attr: "rel"},
	},
	"img": {
		"src":    {attr: "src"},
		"alt":    {attr: "alt"},
		"width":  {attr: "width"},
		"height": {attr: "height"},
	},
	"label": {
		"htmlFor": {attr: "for"},
	},
	"form": {
		"action": {attr: "action"},
		"method": {attr: "method"},
	},
	"canvas": {
		"width":  {attr: "width"},
		"height": {attr: "height"},
	},
}

// textProps are intrinsic on text nodes.
var textProps = map[string]propSpec{
	"textContent": {},
	"data":        {},
	"nodeValue":   {},
}

// lookupProp returns the property spec for name on a node of the given tag.
func lookupProp(tag, name string) (propSpec, bool) {
	if spec, ok := globalProps[name]; ok {
		return spec, true
	}
	spec, ok := tagProps[tag][name]
	return spec, ok
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
