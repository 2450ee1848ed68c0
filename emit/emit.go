package emit

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/confix-lang/confix/lang"
)

// Element names and attributes of the output document.
const (
	elemConfig = "config"
	elemNumber = "number"
	elemDict   = "dict"
	attrName   = "name"
)

// DefaultIndent is the indentation width used by Write.
const DefaultIndent = 2

// Document encodes an evaluated configuration as an XML document. The
// document has a single <config> root whose children appear in declaration
// order, with <number> and <dict> elements named by their constants.
func Document(cfg *lang.Config) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(elemConfig)
	appendEntries(root, cfg)

	return doc
}

// Write encodes cfg as indented XML.
func Write(w io.Writer, cfg *lang.Config, indent int) error {
	doc := Document(cfg)
	doc.Indent(indent)

	_, err := doc.WriteTo(w)

	return err
}

// String encodes cfg as indented XML and returns it.
func String(cfg *lang.Config) (string, error) {
	var sb strings.Builder

	err := Write(&sb, cfg, DefaultIndent)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

func appendEntries(parent *etree.Element, cfg *lang.Config) {
	for name, value := range cfg.All() {
		switch value.Kind {
		case lang.TypeNumber:
			el := parent.CreateElement(elemNumber)
			el.CreateAttr(attrName, name)
			el.SetText(FormatNumber(value.Number))

		case lang.TypeDict:
			el := parent.CreateElement(elemDict)
			el.CreateAttr(attrName, name)
			appendEntries(el, value.Dict)
		}
	}
}

// FormatNumber renders a numeric value for element text. Integral values
// keep an explicit fractional part ("5" renders as "5.0") so numbers are
// unambiguously floating point; non-finite values render as "inf", "-inf",
// and "nan".
//
// Integral values below 1e16 in magnitude always render in plain decimal
// notation; scientific notation begins at 1e16, matching the decimal text
// expected by downstream consumers.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.Trunc(f) == f && math.Abs(f) < 1e16:
		return strconv.FormatFloat(f, 'f', -1, 64) + ".0"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
