package derive

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherShaper
	DispatcherPrimitive
	DispatcherInterface
	DispatcherPointer
	DispatcherBytes
	DispatcherSlice
	DispatcherArray
	DispatcherMap
	DispatcherStruct

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
