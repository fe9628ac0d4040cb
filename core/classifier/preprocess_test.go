package classifier

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8((x + y) * 3), A: 255})
		}
	}
	return img
}

func TestDecodeRejectsNonImage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	require.Error(t, err)
}

func TestPreprocessShapeAndRange(t *testing.T) {
	data := encodePNG(t, gradientImage(50, 30))

	img, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	tensor := Preprocess(img)
	require.Len(t, tensor, TensorLen)

	for _, v := range tensor {
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
	}
}

func TestPreprocessDeterministic(t *testing.T) {
	data := encodePNG(t, gradientImage(64, 64))

	img1, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	img2, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, Preprocess(img1), Preprocess(img2))
}

func TestPreprocessFixedShapeForAnyInput(t *testing.T) {
	small := encodePNG(t, gradientImage(10, 10))
	large := encodePNG(t, gradientImage(500, 300))

	imgSmall, err := Decode(bytes.NewReader(small))
	require.NoError(t, err)
	imgLarge, err := Decode(bytes.NewReader(large))
	require.NoError(t, err)

	require.Len(t, Preprocess(imgSmall), TensorLen)
	require.Len(t, Preprocess(imgLarge), TensorLen)
}
