package port

// MediaProcessor performs local media operations on filesystem paths.
type MediaProcessor interface {
	// Optimise re-encodes the file at inPath as lossy WebP into outPath.
	Optimise(inPath, outPath string) error
	// Resize scales the file at inPath to width x height and writes WebP to outPath.
	Resize(inPath, outPath string, width, height int) error
}
