package ipc

// Validity is the per-field flag carried next to every struct field.
// Ordinals follow the controller's wire values.
type Validity uint8

const (
	Invalid      Validity = 0
	Valid        Validity = 1
	ValidNoValue Validity = 2
	NotSupported Validity = 3
)

var ValidityList = map[Validity]string{
	Invalid:      "invalid",
	Valid:        "valid",
	ValidNoValue: "valid-no-value",
	NotSupported: "not-supported",
}

func (v Validity) String() string {
	if s, ok := ValidityList[v]; ok {
		return s
	}
	return "unknown"
}
