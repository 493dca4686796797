package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/scene"
	"github.com/lixenwraith/ballpit/vmath"
)

// pointLight is a scene light resolved into linear radiance for one frame
type pointLight struct {
	radiance mgl64.Vec3
	position mgl64.Vec3
	distance float64
	decay    float64
}

// lighting is everything constant across the pixels of one frame
type lighting struct {
	ambient mgl64.Vec3
	points  []pointLight
	sky     float64
	ground  float64
	env     float64
	eye     mgl64.Vec3
}

func newLighting(s *scene.Scene, eye mgl64.Vec3) lighting {
	lt := lighting{
		sky:    parameter.EnvSkyIntensity,
		ground: parameter.EnvGroundIntensity,
		env:    parameter.EnvIntensity,
		eye:    eye,
	}
	for _, a := range s.Ambient {
		lt.ambient = lt.ambient.Add(Linear(a.Color).Mul(a.Intensity))
	}
	for _, p := range s.PointLights {
		lt.points = append(lt.points, pointLight{
			radiance: Linear(p.Color).Mul(p.Intensity),
			position: p.Position,
			distance: p.Distance,
			decay:    p.Decay,
		})
	}
	return lt
}

// attenuation is inverse-power falloff, windowed to zero at distance when set
func attenuation(d, cutoff, decay float64) float64 {
	f := 1 / math.Max(math.Pow(d, decay), 0.01)
	if cutoff > 0 {
		w := vmath.Clamp(1-math.Pow(d/cutoff, 4), 0, 1)
		f *= w * w
	}
	return f
}

// shininess maps roughness onto a Blinn-Phong exponent
func shininess(roughness float64) float64 {
	r := math.Max(roughness, 0.05)
	return 2/math.Pow(r, 4) - 2
}

func blinnPhong(n, h mgl64.Vec3, exp float64) float64 {
	nh := math.Max(n.Dot(h), 0)
	return math.Pow(nh, exp) * (exp + 8) / (8 * math.Pi)
}

// shade returns linear radiance leaving surface point p with normal n
func (lt *lighting) shade(base mgl64.Vec3, mat *scene.Material, p, n mgl64.Vec3) mgl64.Vec3 {
	metal := vmath.Clamp(mat.Metalness, 0, 1)
	diffuse := base.Mul(1 - metal)
	f0 := mgl64.Vec3{parameter.BaseReflectance, parameter.BaseReflectance, parameter.BaseReflectance}
	specular := f0.Mul(1 - metal).Add(base.Mul(metal))

	v := lt.eye.Sub(p)
	if v.Len() > 0 {
		v = v.Normalize()
	}

	expBase := shininess(mat.Roughness)
	expCoat := shininess(mat.ClearcoatRoughness)

	out := mul(diffuse, lt.ambient).Mul(1 / math.Pi)

	for i := range lt.points {
		pl := &lt.points[i]
		l := pl.position.Sub(p)
		d := l.Len()
		if d == 0 {
			continue
		}
		l = l.Mul(1 / d)
		nl := n.Dot(l)
		if nl <= 0 {
			continue
		}
		irr := pl.radiance.Mul(nl * attenuation(d, pl.distance, pl.decay))
		h := l.Add(v)
		if hl := h.Len(); hl > 0 {
			h = h.Mul(1 / hl)
		}

		brdf := diffuse.Mul(1 / math.Pi).Add(specular.Mul(blinnPhong(n, h, expBase)))
		out = out.Add(mul(brdf, irr))
		if mat.Clearcoat > 0 {
			coat := parameter.BaseReflectance * mat.Clearcoat * blinnPhong(n, h, expCoat)
			out = out.Add(irr.Mul(coat))
		}
	}

	// Hemisphere environment sampled along the reflection vector
	r := n.Mul(2 * n.Dot(v)).Sub(v)
	env := vmath.Lerp(lt.ground, lt.sky, 0.5+0.5*r.Y()) * lt.env
	out = out.Add(specular.Mul(env)).Add(diffuse.Mul(env * 0.5 * (1 - metal)))

	return out
}

// mul is the component-wise product
func mul(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
