//go:build linux

package x11

import "github.com/mj1618/pinwin/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		client, err := NewClient()
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Enumerator:    client,
			WindowManager: NewWindowManager(client),
			Name:          "x11",
		}, nil
	}
}
