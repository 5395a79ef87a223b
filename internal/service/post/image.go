package post

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

const imageDir = "posts"

// imageExt sniffs the upload and returns the extension to store it under.
// Only content detected as image/* is accepted; the client filename is
// used for the extension only when it agrees with the content type.
func imageExt(u *Upload) (string, bool) {
	if u == nil || len(u.Data) == 0 {
		return "", false
	}

	contentType := http.DetectContentType(u.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", false
	}

	exts, _ := mime.ExtensionsByType(contentType)
	if len(exts) == 0 {
		return "", true
	}

	clientExt := strings.ToLower(path.Ext(u.Filename))
	for _, ext := range exts {
		if ext == clientExt {
			return ext, true
		}
	}
	return exts[0], true
}

// imageName returns a fresh storage name such as "posts/<uuid>.png".
func imageName(ext string) string {
	return path.Join(imageDir, uuid.NewString()+ext)
}
