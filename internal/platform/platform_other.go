//go:build !amd64 && !arm64

package platform

func features() []string {
	return nil
}
