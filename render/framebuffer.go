package render

// Framebuffer is a row-major grid of square pixels
type Framebuffer struct {
	Width, Height int
	Pix           []RGB
}

func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates only when growing past capacity
func (fb *Framebuffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	n := w * h
	if cap(fb.Pix) < n {
		fb.Pix = make([]RGB, n)
	}
	fb.Pix = fb.Pix[:n]
	fb.Width, fb.Height = w, h
}

func (fb *Framebuffer) Fill(c RGB) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

func (fb *Framebuffer) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return RGBBlack
	}
	return fb.Pix[y*fb.Width+x]
}

func (fb *Framebuffer) Set(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = c
}

// BlendAt composites c over the existing pixel
func (fb *Framebuffer) BlendAt(x, y int, c RGB, alpha float64) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	fb.Pix[i] = Blend(fb.Pix[i], c, alpha)
}
