package store

import (
	"fmt"
	"regexp"
	"strings"
)

// imageRefPattern matches asset references like image-<id>-<w>x<h>-<format>.
var imageRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

// ImageURLBuilder turns image asset references into CDN URLs.
type ImageURLBuilder struct {
	cdnHost   string
	projectID string
	dataset   string
}

func NewImageURLBuilder(cdnHost, projectID, dataset string) *ImageURLBuilder {
	return &ImageURLBuilder{
		cdnHost:   strings.TrimRight(cdnHost, "/"),
		projectID: projectID,
		dataset:   dataset,
	}
}

// URL resolves ref to a fetchable image URL.
func (b *ImageURLBuilder) URL(ref string) (string, error) {
	m := imageRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", fmt.Errorf("malformed image reference %q", ref)
	}
	return fmt.Sprintf("%s/images/%s/%s/%s-%s.%s", b.cdnHost, b.projectID, b.dataset, m[1], m[2], m[3]), nil
}
