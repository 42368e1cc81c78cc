package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "instashare"

// CloudinaryUploader implements Uploader against Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from a CLOUDINARY_URL-style URL.
func NewCloudinaryUploader(url string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadImage uploads the file and returns its secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, publicID string) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         uploadFolder,
		PublicID:       publicID,
		Transformation: "q_auto",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
