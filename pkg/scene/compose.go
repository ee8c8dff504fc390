package scene

import "github.com/prism-render/prism/pkg/material"

// ComposeLayered builds a two-layer surface (a coating over a base
// material, e.g. varnished wood or a clear-coated diffuse finish) out
// of the closed material set, without growing it to a fifth variant.
// The ray either reflects off the outer coating or reaches the base
// material, chosen by the coating's normal-incidence Fresnel
// reflectance -- an approximation of a true layered BSDF, adequate for
// a coating that is itself thin and mostly transparent.
func ComposeLayered(base material.Material, outer *material.Dielectric) *material.Mix {
	return material.NewMix(base, outer, material.NormalIncidenceFresnel(outer.RefractionIndex))
}
