package hotkey

// Fake is a Monitor test double that injects synthetic signals without
// real hardware.
type Fake struct {
	toggles  chan struct{}
	degraded chan error
}

func NewFake() *Fake {
	return &Fake{
		toggles:  make(chan struct{}, 1),
		degraded: make(chan error, 1),
	}
}

func (f *Fake) Start() error            { return nil }
func (f *Fake) Stop()                   {}
func (f *Fake) Toggles() <-chan struct{} { return f.toggles }
func (f *Fake) Degraded() <-chan error   { return f.degraded }

func (f *Fake) SimToggle()           { f.toggles <- struct{}{} }
func (f *Fake) SimDegraded(err error) { f.degraded <- err }
