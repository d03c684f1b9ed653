package types

// ResourceArrayDescriptor describes a densely indexed collection of
// same-kind resources (buffers or textures) that is bound to a shader as
// a single array binding, rather than one bind group entry per resource.
type ResourceArrayDescriptor struct {
	// Label is a debug label.
	Label string
	// Capacity is the fixed number of slots in the array. Allocate fails
	// once every slot is occupied.
	Capacity uint32
}
