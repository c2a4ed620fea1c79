package connector

import (
	"path/filepath"
	"strings"
)

// supportedTypes maps lowercase file extensions (leading dot included) to the
// media type sent to the model. The table is a closed allowlist; content is
// never sniffed.
var supportedTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".heic": "image/heic",
	".heif": "image/heif",
}

// extensionOf returns the lowercased extension of ref including the leading
// dot. Query strings and fragments do not count towards the extension, so
// "https://x/img.png?s=2" yields ".png". Empty when ref has none.
func extensionOf(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return strings.ToLower(filepath.Ext(ref))
}

// mediaTypeFor looks the extension up in the allowlist.
func mediaTypeFor(ext string) (string, bool) {
	mediaType, ok := supportedTypes[ext]
	return mediaType, ok
}
