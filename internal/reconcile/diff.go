package reconcile

import "github.com/arkadas/deskgrid/internal/icons"

// DiffFields reports which of the requested fields hold different values in
// a and b. Fields are checked in the order of icons.ComparedFields and the
// result preserves that order regardless of the order of the fields
// argument. An absent value and an empty string count as equal.
func DiffFields(a, b icons.Record, fields []icons.Field) []icons.Field {
	requested := make(map[icons.Field]bool, len(fields))
	for _, f := range fields {
		requested[f] = true
	}

	var diffs []icons.Field
	for _, f := range icons.ComparedFields {
		if !requested[f] {
			continue
		}
		if !fieldEqual(a, b, f) {
			diffs = append(diffs, f)
		}
	}
	return diffs
}

func fieldEqual(a, b icons.Record, f icons.Field) bool {
	switch f {
	case icons.FieldName:
		return a.Name == b.Name
	case icons.FieldImage:
		return a.Image == b.Image
	case icons.FieldProgramLink:
		return a.ProgramLink == b.ProgramLink
	case icons.FieldWebsiteLink:
		return a.WebsiteLink == b.WebsiteLink
	case icons.FieldFontColor:
		return a.FontColor == b.FontColor
	case icons.FieldArgs:
		return argsEqual(a.Args, b.Args)
	default:
		// Unknown fields never differ; callers only get fields from
		// icons.ComparedFields in practice.
		return true
	}
}

// argsEqual compares argument lists element-wise. Order matters: the values
// are command-line arguments, so {"-a","-b"} and {"-b","-a"} differ.
func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
