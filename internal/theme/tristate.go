package theme

// Tristate is a decoration flag that a rule may leave unset.
type Tristate int8

const (
	Unset Tristate = iota
	True
	False
)

// TristateOf lifts a plain bool.
func TristateOf(b bool) Tristate {
	if b {
		return True
	}
	return False
}

// IsSet reports whether the flag carries a definite value.
func (t Tristate) IsSet() bool { return t != Unset }

// Bool resolves the flag, treating Unset as false.
func (t Tristate) Bool() bool { return t == True }

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}
