package boundary

import (
	"image"
	"sync"
)

// Handle identifies a decoded image held by the library. It is the Go-side
// value of the opaque imgsl_handle word: cgo's pointer-passing rules forbid
// handing a Go pointer to C, so instead of a raw address the handle is a
// nonzero id into a process-local registry. Zero is the null handle.
type Handle uintptr

// registry maps live handles to their decoded pixels. Ids are monotonically
// increasing and never reused, so a destroyed handle can never alias a newer
// image: any operation on it is a detected lookup miss instead of silent
// corruption.
type registry struct {
	mu    sync.RWMutex
	next  Handle
	slots map[Handle]*image.RGBA
}

func newRegistry() *registry {
	return &registry{slots: make(map[Handle]*image.RGBA)}
}

// put registers img and returns its freshly minted handle.
func (r *registry) put(img *image.RGBA) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.slots[r.next] = img
	return r.next
}

// get resolves h to its image, reporting whether h is live.
func (r *registry) get(h Handle) (*image.RGBA, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.slots[h]
	return img, ok
}

// remove drops h, reporting whether it was live. Removing an already-dead
// handle is a no-op; double-destroy must not crash the host.
func (r *registry) remove(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[h]; !ok {
		return false
	}
	delete(r.slots, h)
	return true
}

// liveCount reports the number of live handles.
func (r *registry) liveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

// handles is the single process-wide registry backing every operation.
var handles = newRegistry()

// LiveHandles reports how many handles are currently live. Tests use it to
// verify that destroy releases exactly what open and blur allocate.
func LiveHandles() int {
	return handles.liveCount()
}
