package drawer

// InteractionHandle identifies an acquired interaction lock.
type InteractionHandle int

// Platform is the set of process-wide services the controller drives
// around a drag. Calls are fire-and-forget.
type Platform interface {
	// BeginInteraction asks the host not to start other UI work.
	BeginInteraction() InteractionHandle
	// EndInteraction releases a handle returned by BeginInteraction.
	EndInteraction(h InteractionHandle)
	SetStatusBarHidden(hidden bool, anim StatusBarAnimation)
	DismissKeyboard()
}

// NopPlatform ignores every call.
type NopPlatform struct{}

// BeginInteraction implements Platform.
func (NopPlatform) BeginInteraction() InteractionHandle { return 0 }

// EndInteraction implements Platform.
func (NopPlatform) EndInteraction(InteractionHandle) {}

// SetStatusBarHidden implements Platform.
func (NopPlatform) SetStatusBarHidden(bool, StatusBarAnimation) {}

// DismissKeyboard implements Platform.
func (NopPlatform) DismissKeyboard() {}
