package model

import "time"

// SliderImage is a homepage slider entry as stored in the `slider_images`
// table.  ImageURL and ThumbURL are paths under the public uploads
// directory; the files themselves live on the local filesystem.
type SliderImage struct {
	ID        uint64    `json:"id"`                  // slider_images.id
	ImageURL  string    `json:"image_url"`           // slider_images.image_url
	ThumbURL  *string   `json:"thumb_url,omitempty"` // slider_images.thumb_url (nullable)
	AltText   string    `json:"alt_text"`            // slider_images.alt_text
	LinkURL   string    `json:"link_url"`            // slider_images.link_url
	SortOrder uint32    `json:"sort_order"`          // slider_images.sort_order
	CreatedAt time.Time `json:"created_at"`          // slider_images.created_at
}
