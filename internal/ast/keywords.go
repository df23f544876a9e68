package ast

// statementKeywords is the set of statement keywords defined by RFC 7950
// (plus the RFC 6020 leftovers that still appear in published models).
var statementKeywords = map[string]struct{}{
	"action":           {},
	"anydata":          {},
	"anyxml":           {},
	"argument":         {},
	"augment":          {},
	"base":             {},
	"belongs-to":       {},
	"bit":              {},
	"case":             {},
	"choice":           {},
	"config":           {},
	"contact":          {},
	"container":        {},
	"default":          {},
	"description":      {},
	"deviate":          {},
	"deviation":        {},
	"enum":             {},
	"error-app-tag":    {},
	"error-message":    {},
	"extension":        {},
	"feature":          {},
	"fraction-digits":  {},
	"grouping":         {},
	"identity":         {},
	"if-feature":       {},
	"import":           {},
	"include":          {},
	"input":            {},
	"key":              {},
	"leaf":             {},
	"leaf-list":        {},
	"length":           {},
	"list":             {},
	"mandatory":        {},
	"max-elements":     {},
	"min-elements":     {},
	"modifier":         {},
	"module":           {},
	"must":             {},
	"namespace":        {},
	"notification":     {},
	"ordered-by":       {},
	"organization":     {},
	"output":           {},
	"path":             {},
	"pattern":          {},
	"position":         {},
	"prefix":           {},
	"presence":         {},
	"range":            {},
	"reference":        {},
	"refine":           {},
	"require-instance": {},
	"revision":         {},
	"revision-date":    {},
	"rpc":              {},
	"status":           {},
	"submodule":        {},
	"type":             {},
	"typedef":          {},
	"unique":           {},
	"units":            {},
	"uses":             {},
	"value":            {},
	"when":             {},
	"yang-version":     {},
	"yin-element":      {},
}

// IsStatementKeyword reports whether text is a known statement keyword.
func IsStatementKeyword(text string) bool {
	_, ok := statementKeywords[text]
	return ok
}
