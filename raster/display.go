package raster

// DisplayLabels overlays black pixels on label boundaries (where a
// 4-neighbor label differs) and returns a packed RGBA buffer of length
// 4*Width*Height. The base image is carried through unchanged off of
// boundary pixels.
func DisplayLabels(img *Image, labels []uint32) (*Image, error) {
	if len(labels) != img.Width*img.Height {
		return nil, ErrInputShape
	}

	pix := make([]byte, img.Width*img.Height*4)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			srcIdx := (y*img.Width + x) * img.Channels
			dstIdx := (y*img.Width + x) * 4

			if isBoundary(labels, img.Width, img.Height, x, y) {
				pix[dstIdx] = 0
				pix[dstIdx+1] = 0
				pix[dstIdx+2] = 0
				pix[dstIdx+3] = 255
				continue
			}

			for c := 0; c < 3; c++ {
				if c < img.Channels {
					pix[dstIdx+c] = img.Pix[srcIdx+c]
				}
			}
			pix[dstIdx+3] = 255
		}
	}

	return &Image{Width: img.Width, Height: img.Height, Channels: 4, Pix: pix}, nil
}

// isBoundary reports whether (x,y) has a 4-neighbor with a different
// label.
func isBoundary(labels []uint32, width, height, x, y int) bool {
	here := labels[y*width+x]
	if x+1 < width && labels[y*width+x+1] != here {
		return true
	}
	if x > 0 && labels[y*width+x-1] != here {
		return true
	}
	if y+1 < height && labels[(y+1)*width+x] != here {
		return true
	}
	if y > 0 && labels[(y-1)*width+x] != here {
		return true
	}
	return false
}
