// SPDX-License-Identifier: MIT

package solver

import (
	"math/cmplx"

	"github.com/katalvlaran/berreman/halfspace"
	"github.com/katalvlaran/berreman/matrix"
	"github.com/katalvlaran/berreman/optics"
)

const (
	opEllipsometry = "ellipsometry"
	opPower        = "power"
)

// Result holds the per-sample outputs of one solve. The exported slices
// are indexed like Wavelengths; derived quantities are computed on demand.
type Result struct {
	Wavelengths []float64
	Kx          []float64

	// Transfer is T = Li_front · P_stack · L_back.
	Transfer []matrix.Mat4

	// JonesR and JonesT are the reflection and transmission Jones matrices
	// in (p, s) order.
	JonesR []matrix.Mat2
	JonesT []matrix.Mat2

	// Incident is the polarization used by Rho, Reflectance, Transmittance
	// and ReflectedStokes.
	Incident Polarization

	front, back []halfspace.Modes
}

func newResult(lambda []float64, pol Polarization) *Result {
	n := len(lambda)

	return &Result{
		Wavelengths: append([]float64(nil), lambda...),
		Kx:          make([]float64, n),
		Transfer:    make([]matrix.Mat4, n),
		JonesR:      make([]matrix.Mat2, n),
		JonesT:      make([]matrix.Mat2, n),
		Incident:    pol,
		front:       make([]halfspace.Modes, n),
		back:        make([]halfspace.Modes, n),
	}
}

// Len returns the number of samples.
func (r *Result) Len() int { return len(r.Wavelengths) }

// R returns the reflection power coefficients |r_ij|².
func (r *Result) R() []matrix.Real2 {
	out := make([]matrix.Real2, len(r.JonesR))
	for i, j := range r.JonesR {
		out[i] = j.Abs2()
	}

	return out
}

// T returns the transmission power coefficients |t_ij|² · corr.
//
// For an isotropic back half-space corr = Re(Kz_back)/Re(Kz_front). For an
// anisotropic one, row i (transmitted mode p+ or s+) is scaled by the
// z-flux of that mode over Re(Kz_front); flux carried jointly by the two
// transmitted modes is neglected, which is exact for lossless media. Use
// Transmittance for the exact total power of the incident polarization.
func (r *Result) T() []matrix.Real2 {
	out := make([]matrix.Real2, len(r.JonesT))
	for i, j := range r.JonesT {
		a := j.Abs2()
		kzf := real(r.front[i].Q[halfspace.SPlus])
		if r.back[i].Isotropic {
			out[i] = a.Scale(real(r.back[i].Q[halfspace.SPlus]) / kzf)

			continue
		}
		for row, mode := range incidentIdx {
			corr := halfspace.Flux(r.back[i].L, mode) / kzf
			a[row][0] *= corr
			a[row][1] *= corr
		}
		out[i] = a
	}

	return out
}

// JonesRC returns the reflection Jones matrices in the circular basis, D⁻¹·J_r·C.
func (r *Result) JonesRC() []matrix.Mat2 {
	out := make([]matrix.Mat2, len(r.JonesR))
	for i, j := range r.JonesR {
		out[i] = circDInv.Mul(j).Mul(circC)
	}

	return out
}

// JonesTC returns the transmission Jones matrices in the circular basis, C⁻¹·J_t·C.
func (r *Result) JonesTC() []matrix.Mat2 {
	out := make([]matrix.Mat2, len(r.JonesT))
	for i, j := range r.JonesT {
		out[i] = circCInv.Mul(j).Mul(circC)
	}

	return out
}

// RC returns |JonesRC|².
func (r *Result) RC() []matrix.Real2 {
	jc := r.JonesRC()
	out := make([]matrix.Real2, len(jc))
	for i, j := range jc {
		out[i] = j.Abs2()
	}

	return out
}

// TC returns |JonesTC|² · Re(Kz_back)/Re(Kz_front).
// ErrAnisotropicBack (per sample) when the back half-space is anisotropic.
func (r *Result) TC() ([]matrix.Real2, error) {
	jc := r.JonesTC()
	out := make([]matrix.Real2, len(jc))
	for i, j := range jc {
		if !r.back[i].Isotropic {
			return nil, r.sampleErr(opPower, i, ErrAnisotropicBack)
		}
		out[i] = j.Abs2().Scale(real(r.back[i].Q[halfspace.SPlus]) / real(r.front[i].Q[halfspace.SPlus]))
	}

	return out, nil
}

// Ratio returns S = J_r / r_ss. ErrNormalization when r_ss = 0.
func (r *Result) Ratio() ([]matrix.Mat2, error) {
	out := make([]matrix.Mat2, len(r.JonesR))
	for i, j := range r.JonesR {
		rss := j[1][1]
		if rss == 0 {
			return nil, r.sampleErr(opEllipsometry, i, optics.ErrNormalization)
		}
		out[i] = j.Scale(1 / rss)
	}

	return out, nil
}

// PsiMatrix returns atan|S_ij| in degrees.
func (r *Result) PsiMatrix() ([]matrix.Real2, error) {
	return r.angles(psiOf)
}

// DeltaMatrix returns −arg(S_ij) in degrees.
func (r *Result) DeltaMatrix() ([]matrix.Real2, error) {
	return r.angles(deltaOf)
}

func (r *Result) angles(f func(complex128) float64) ([]matrix.Real2, error) {
	s, err := r.Ratio()
	if err != nil {
		return nil, err
	}
	out := make([]matrix.Real2, len(s))
	for i := range s {
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				out[i][a][b] = f(s[i][a][b])
			}
		}
	}

	return out, nil
}

// Psi returns the pp entry of PsiMatrix: atan|r_pp/r_ss| in degrees.
func (r *Result) Psi() ([]float64, error) {
	return r.pp(r.PsiMatrix)
}

// Delta returns the pp entry of DeltaMatrix: −arg(r_pp/r_ss) in degrees.
func (r *Result) Delta() ([]float64, error) {
	return r.pp(r.DeltaMatrix)
}

func (r *Result) pp(f func() ([]matrix.Real2, error)) ([]float64, error) {
	m, err := f()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(m))
	for i := range m {
		out[i] = m[i][0][0]
	}

	return out, nil
}

// Rho returns (E_rp/E_rs)/(E_ip/E_is) for the incident polarization.
//
// Errors:
//   - ErrPartialPolarization for a partially polarized Stokes input.
//   - optics.ErrNormalization when E_rs, E_ip or E_is is zero.
func (r *Result) Rho() ([]complex128, error) {
	ein, err := jonesOf(r.Incident)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(r.JonesR))
	for i, j := range r.JonesR {
		er := j.MulVec(ein)
		if er[1] == 0 || ein[0] == 0 || ein[1] == 0 {
			return nil, r.sampleErr(opEllipsometry, i, optics.ErrNormalization)
		}
		out[i] = (er[0] / er[1]) / (ein[0] / ein[1])
	}

	return out, nil
}

// MuellerR returns the reflection Mueller matrices built from S and
// normalized so that M₀₀ = 1.
func (r *Result) MuellerR() ([]matrix.Real4, error) {
	s, err := r.Ratio()
	if err != nil {
		return nil, err
	}

	return r.normalizedMueller(s)
}

// MuellerT returns the transmission Mueller matrices normalized so that M₀₀ = 1.
func (r *Result) MuellerT() ([]matrix.Real4, error) {
	return r.normalizedMueller(r.JonesT)
}

func (r *Result) normalizedMueller(js []matrix.Mat2) ([]matrix.Real4, error) {
	out := make([]matrix.Real4, len(js))
	for i, j := range js {
		m := Mueller(j)
		if m[0][0] == 0 {
			return nil, r.sampleErr(opEllipsometry, i, optics.ErrNormalization)
		}
		out[i] = m.Scale(1 / m[0][0])
	}

	return out, nil
}

// ReflectedStokes returns the Stokes vector of the reflected light for the
// incident polarization, in the intensity units of the incident vector.
func (r *Result) ReflectedStokes() []StokesVector {
	in := r.Incident.Stokes()
	out := make([]StokesVector, len(r.JonesR))
	for i, j := range r.JonesR {
		out[i] = StokesVector(Mueller(j).MulVec(in))
	}

	return out
}

// Reflectance returns the reflected over incident z-flux for the incident
// polarization.
func (r *Result) Reflectance() []float64 {
	rho := r.Incident.Coherency()
	out := make([]float64, len(r.JonesR))
	for i, j := range r.JonesR {
		in := fieldFlux(modeFields(r.front[i].L, incidentIdx, matrix.Identity2()), rho)
		out[i] = -fieldFlux(modeFields(r.front[i].L, reflectedIdx, j), rho) / in
	}

	return out
}

// Transmittance returns the transmitted over incident z-flux for the
// incident polarization, including flux carried jointly by the two
// transmitted modes of an anisotropic back half-space.
func (r *Result) Transmittance() []float64 {
	rho := r.Incident.Coherency()
	out := make([]float64, len(r.JonesT))
	for i, j := range r.JonesT {
		in := fieldFlux(modeFields(r.front[i].L, incidentIdx, matrix.Identity2()), rho)
		out[i] = fieldFlux(modeFields(r.back[i].L, incidentIdx, j), rho) / in
	}

	return out
}

// modeFields returns the 4×2 map from incident (p, s) amplitudes to the
// field Ψ: the columns modes of l times the Jones matrix j.
func modeFields(l matrix.Mat4, modes [2]int, j matrix.Mat2) [4][2]complex128 {
	var out [4][2]complex128
	for row := 0; row < 4; row++ {
		for b := 0; b < 2; b++ {
			out[row][b] = l[row][modes[0]]*j[0][b] + l[row][modes[1]]*j[1][b]
		}
	}

	return out
}

// fieldFlux returns Re Σ_ab (M₀ₐ·M₃ᵦ* − M₁ₐ·M₂ᵦ*)·ρ_ab, the z-flux of the
// field M·e averaged over the coherency matrix ρ = ⟨e·eᴴ⟩.
func fieldFlux(m [4][2]complex128, rho matrix.Mat2) float64 {
	var f complex128
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			f += (m[0][a]*cmplx.Conj(m[3][b]) - m[1][a]*cmplx.Conj(m[2][b])) * rho[a][b]
		}
	}

	return real(f)
}

func (r *Result) sampleErr(op string, i int, err error) error {
	return &optics.SampleError{Op: op, Sample: i, Layer: optics.NoLayer, Wavelength: r.Wavelengths[i], Err: err}
}
