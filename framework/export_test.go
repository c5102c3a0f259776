package framework

// SwapFailureHooks replaces the installed hooks and returns a function that restores them.
// It exists only for tests, since hooks cannot otherwise be uninstalled.
func SwapFailureHooks(h FailureHooks) (restore func()) {
	hooksLock.Lock()
	previous := installedHooks
	installedHooks = h
	hooksLock.Unlock()
	return func() {
		hooksLock.Lock()
		installedHooks = previous
		hooksLock.Unlock()
	}
}

var ReformatFailureMessage = reformatFailureMessage
