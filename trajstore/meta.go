package trajstore

import "strconv"
import "strings"

// The attribute value reported for entities or attributes missing from
// the metadata. Group keys built from missing attributes degrade to this
// string instead of failing, so filters simply never match them.
const MissingAttribute = "undefined"

// The separator used to join attribute values into group keys.
const GroupKeySeparator = ":"

type valueKind uint8

const (
	kindString valueKind = iota
	kindNumber
	kindBool
)

// A Value is one metadata attribute value. Only three kinds exist:
// string, number and boolean. The zero value is the empty string.
type Value struct {
	kind valueKind
	str  string
	num  float64
	bit  bool
}

// Creates a string [Value].
func String(s string) Value { return Value{kind: kindString, str: s} }

// Creates a numeric [Value].
func Number(n float64) Value { return Value{kind: kindNumber, num: n} }

// Creates a boolean [Value].
func Bool(b bool) Value { return Value{kind: kindBool, bit: b} }

// Returns the value rendered as a string, the representation used for
// group keys. Whole numbers render without a decimal part ("2", not
// "2.0"), matching the integer ids and condition codes of the source
// data.
func (self Value) String() string {
	switch self.kind {
	case kindNumber:
		return strconv.FormatFloat(self.num, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(self.bit)
	default:
		return self.str
	}
}

// Returns the numeric content and whether the value is a number.
func (self Value) Number() (float64, bool) { return self.num, self.kind == kindNumber }

// Returns the boolean content and whether the value is a boolean.
func (self Value) Bool() (bool, bool) { return self.bit, self.kind == kindBool }

// Metadata is the attribute record of one entity: an arbitrary bag of
// named values (condition, gender, transportation...). One record is
// shared by reference between every trajectory point of its entity;
// records are never duplicated and outlive the points referencing them.
type Metadata map[string]Value

// Returns the string form of the named attribute, or [MissingAttribute]
// if the record is nil or the attribute is absent.
func (self Metadata) Attribute(name string) string {
	if self == nil { return MissingAttribute }
	value, found := self[name]
	if !found { return MissingAttribute }
	return value.String()
}

// Joins the string forms of the named attributes with
// [GroupKeySeparator]. Group membership throughout the renderer is exact
// string equality against keys built this way, e.g.
// ("body_orientation", "pedestrian_direction") -> "FaceToFace:Left".
func (self Metadata) GroupKey(attributes ...string) string {
	parts := make([]string, len(attributes))
	for i, name := range attributes {
		parts[i] = self.Attribute(name)
	}
	return strings.Join(parts, GroupKeySeparator)
}
