package pool

// fixed is a bounded pool: newFn is called at most capacity times, so it
// caps the memory an Arena recycling pool can pin down, unlike NewDynamic
// which the GC may shrink to zero on its own.
type fixed struct {
	available chan interface{}
	all       chan interface{}
	buf       chan interface{}
	newFn     func() interface{}
}

// NewFixed is a bounded-capacity pool of reusable values. Once capacity
// values have been created and none has been Put back, Get blocks until a
// Put.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		available: make(chan interface{}, capacity),
		all:       make(chan interface{}, capacity),
		buf:       make(chan interface{}, 1024),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el interface{}

		select {
		case p.all <- struct{}{}:
			el = p.newFn()
		case el = <-p.available:
		case el = <-p.buf:
		}
		return el
	}
}

func (p *fixed) Put(el interface{}) {
	select {
	case p.available <- el:
	case p.buf <- el:
	default:
	}
}
