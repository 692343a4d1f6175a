//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

type Repository interface {
	Read(path string) ([]byte, error)
	Exists(path string) bool
	MkdirAll(path string) error
	// ListDirs returns the names of the immediate subdirectories of dir.
	ListDirs(dir string) ([]string, error)
}
