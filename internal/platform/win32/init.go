//go:build windows

package win32

import "github.com/mj1618/pinwin/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		reader := NewReader()
		return &platform.Provider{
			Enumerator:    reader,
			WindowManager: NewWindowManager(reader),
			Name:          "win32",
		}, nil
	}
}
