package transcript

import (
	"fmt"
	"strings"
)

// ExtractVideoID pulls the video identifier out of the reference URL shapes
// the catalog carries:
//
//	https://www.youtube.com/embed/<id>?rel=0
//	https://youtu.be/<id>
//	anything else: the last path segment
func ExtractVideoID(videoRef string) (string, error) {
	ref := strings.TrimSpace(videoRef)
	if ref == "" {
		return "", fmt.Errorf("empty video reference")
	}

	// Strip query string first; ids never contain '?'
	if idx := strings.Index(ref, "?"); idx >= 0 {
		ref = ref[:idx]
	}

	if idx := strings.Index(ref, "/embed/"); idx >= 0 {
		ref = ref[idx+len("/embed/"):]
	} else if strings.HasPrefix(ref, "https://youtu.be/") {
		ref = strings.TrimPrefix(ref, "https://youtu.be/")
	} else if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		ref = ref[idx+1:]
	}

	ref = strings.Trim(ref, "/")
	if ref == "" {
		return "", fmt.Errorf("no video id in reference %q", videoRef)
	}
	return ref, nil
}
