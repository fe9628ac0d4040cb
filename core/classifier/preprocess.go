package classifier

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

// Decode reads PNG or JPEG bytes into an image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Preprocess converts a decoded image into the model's input tensor:
// resize to ImageSize x ImageSize, then scale RGB channels to [0,1] in
// HWC order. The same image always yields the same tensor.
func Preprocess(img image.Image) Tensor {
	resized := resize.Resize(ImageSize, ImageSize, img, resize.Lanczos3)

	t := make(Tensor, TensorLen)
	i := 0
	for y := 0; y < ImageSize; y++ {
		for x := 0; x < ImageSize; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()

			t[i] = float32(r) / 65535.0
			t[i+1] = float32(g) / 65535.0
			t[i+2] = float32(b) / 65535.0
			i += Channels
		}
	}

	return t
}
