package domain

import "context"

// Image is a hosted image as the backend stores it. PublicID is the
// provider-assigned id used for later deletion/reference.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (i Image) IsZero() bool { return i.URL == "" && i.PublicID == "" }

// Uploader pushes a raw file to the image-hosting provider.
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte) (Image, error)
}

type imageKind int

const (
	imageNone imageKind = iota
	imageLocal
	imageRemote
)

// ImageRef is the tagged union behind a form's image field: a locally
// staged file not yet uploaded, an already-hosted image, or nothing.
type ImageRef struct {
	kind   imageKind
	name   string
	data   []byte
	remote Image
}

func NoImage() ImageRef { return ImageRef{} }

func LocalImage(name string, data []byte) ImageRef {
	return ImageRef{kind: imageLocal, name: name, data: data}
}

func RemoteImage(img Image) ImageRef {
	return ImageRef{kind: imageRemote, remote: img}
}

func (r ImageRef) IsZero() bool   { return r.kind == imageNone }
func (r ImageRef) IsLocal() bool  { return r.kind == imageLocal }
func (r ImageRef) IsRemote() bool { return r.kind == imageRemote }

// Remote returns the hosted image for a Remote ref, the zero Image
// otherwise.
func (r ImageRef) Remote() Image {
	if r.kind == imageRemote {
		return r.remote
	}
	return Image{}
}

// Resolve turns the ref into a hosted image. Local refs are uploaded and
// substituted; a failed upload surfaces as UploadError and never falls back
// to a previous image. None resolves to the zero Image.
func (r ImageRef) Resolve(ctx context.Context, up Uploader) (Image, error) {
	switch r.kind {
	case imageRemote:
		return r.remote, nil
	case imageLocal:
		img, err := up.Upload(ctx, r.name, r.data)
		if err != nil {
			return Image{}, &UploadError{Err: err}
		}
		return img, nil
	default:
		return Image{}, nil
	}
}
