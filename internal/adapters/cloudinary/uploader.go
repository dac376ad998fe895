package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"avantika_admin/internal/adapters/observability"
	"avantika_admin/internal/domain"
)

// Uploader pushes staged files to the image-hosting provider via an
// unsigned multipart upload (cloud name + upload preset from config).
type Uploader struct {
	base   string
	cloud  string
	preset string
	hc     *http.Client
}

func New(base, cloud, preset string) (*Uploader, error) {
	if cloud == "" || preset == "" {
		return nil, fmt.Errorf("cloud name and upload preset are required")
	}
	return &Uploader{
		base:   base,
		cloud:  cloud,
		preset: preset,
		hc:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (domain.Image, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		return domain.Image{}, err
	}
	if _, err := fw.Write(data); err != nil {
		return domain.Image{}, err
	}
	if err := mw.WriteField("upload_preset", u.preset); err != nil {
		return domain.Image{}, err
	}
	if err := mw.Close(); err != nil {
		return domain.Image{}, err
	}

	url := fmt.Sprintf("%s/%s/image/upload", u.base, u.cloud)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return domain.Image{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := u.hc.Do(req)
	if err != nil {
		return domain.Image{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("cloudinary", "/image/upload", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		msg := "upload rejected"
		if json.Unmarshal(b, &body) == nil && body.Error.Message != "" {
			msg = body.Error.Message
		}
		return domain.Image{}, &domain.RequestError{Status: resp.StatusCode, Message: msg}
	}

	var out struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Image{}, err
	}
	return domain.Image{URL: out.SecureURL, PublicID: out.PublicID}, nil
}
