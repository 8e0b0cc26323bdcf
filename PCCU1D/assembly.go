package PCCU1D

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// evaluateModel runs every model term on the reconstructed states
func (s *Solver) evaluateModel() (dtCFL float64) {
	var (
		ws = s.ws
		W  = s.w
	)
	s.model.ComputeF(ws.Wi, ws.F)
	s.model.ComputeS(W, ws.Wi, ws.S)
	s.model.ComputeB(W, ws.Wi, ws.B)
	s.model.ComputeSpsi(W, ws.Wi, ws.Spsi)
	s.model.ComputeBpsi(W, ws.Wi, ws.Bpsi)
	if s.cfg.Diffusion == PathJacobian {
		s.model.ComputeAinv(W, ws.Wi, ws.Ainv)
	}
	dtCFL = s.model.LocalSpeeds(ws.Wi, s.dx, ws.Speeds)
	return
}

// assembleFluxes computes the central upwind numerical flux
//
//	H = (ap F(L) - am F(R))/(ap - am) + ap am/(ap - am) D
//
// and the shares of Psi = Spsi + Bpsi sent to the cell on each side. D is
// Ainv (F(R) - F(L) - Psi) for PathJacobian and the state jump for
// StateJump, both vanish at rest. When ap = am = 0 the flux is the plain
// average and Psi is split evenly.
func (s *Solver) assembleFluxes() error {
	var (
		ws = s.ws
		nu = ws.Nvars - 1
	)
	ws.Psi.CopyFrom(ws.Spsi).Add(ws.Bpsi)
	return s.part.forEach(s.part.interfaces, func(kMin, kMax int) error {
		var (
			delta = mat.NewVecDense(nu, nil)
			corr  = mat.NewVecDense(nu, nil)
		)
		for k := kMin; k < kMax; k++ {
			ap, am := ws.Speeds.Ap[k], ws.Speeds.Am[k]
			if ap-am <= 0 {
				for n := 0; n < nu; n++ {
					ws.H.RowView(n)[k] = 0.5 * (ws.F.Left.RowView(n)[k] + ws.F.Right.RowView(n)[k])
				}
				ws.Wp[k], ws.Wm[k] = 0.5, 0.5
				continue
			}
			if s.cfg.Diffusion == StateJump {
				s.stateJump(k, corr)
			} else {
				for n := 0; n < nu; n++ {
					delta.SetVec(n, ws.F.Right.RowView(n)[k]-ws.F.Left.RowView(n)[k]-ws.Psi.RowView(n)[k])
				}
				corr.MulVec(ws.Ainv[k], delta)
			}
			var (
				oosd = 1. / (ap - am)
				diff = ap * am * oosd
			)
			for n := 0; n < nu; n++ {
				fl, fr := ws.F.Left.RowView(n)[k], ws.F.Right.RowView(n)[k]
				ws.H.RowView(n)[k] = (ap*fl-am*fr)*oosd + diff*corr.AtVec(n)
			}
			ws.Wp[k], ws.Wm[k] = ap*oosd, -am*oosd
		}
		return nil
	})
}

// stateJump is U(R) - U(L) at interface k with the depth of the lowest layer
// replaced by its level h + Z
func (s *Solver) stateJump(k int, jump *mat.VecDense) {
	var (
		ws   = s.ws
		nu   = ws.Nvars - 1
		L, R = ws.Wi.Left, ws.Wi.Right
	)
	for n := 0; n < nu; n++ {
		jump.SetVec(n, R.At(n, k)-L.At(n, k))
	}
	jump.SetVec(s.lowest, jump.AtVec(s.lowest)+R.At(nu, k)-L.At(nu, k))
}

// assembleRHS combines the flux divergence, the cell sources and the upwind
// shares of the interface path integrals. Interior cell j, RHS column j-1,
// is bounded by interfaces j-1 and j.
func (s *Solver) assembleRHS() error {
	var (
		ws   = s.ws
		nu   = ws.Nvars - 1
		oodx = 1. / s.dx
	)
	for n := 0; n < nu; n++ {
		s.div.MulVec(ws.DivH.RowView(n), ws.H.RowView(n))
	}
	return s.part.forEach(s.part.interior, func(cMin, cMax int) error {
		for n := 0; n < nu; n++ {
			var (
				rhs  = ws.RHS.RowView(n)
				divH = ws.DivH.RowView(n)
				src  = ws.S.RowView(n)
				bsrc = ws.B.RowView(n)
				psi  = ws.Psi.RowView(n)
			)
			for c := cMin; c < cMax; c++ {
				// Left interface of the cell is c, right interface is c+1
				rhs[c] = -divH[c] +
					oodx*(src[c]+bsrc[c]+ws.Wp[c]*psi[c]+ws.Wm[c+1]*psi[c+1])
			}
		}
		return nil
	})
}

// MaxAbsFlux is the largest magnitude of the numerical flux of row n
func (ws *Workspace) MaxAbsFlux(n int) float64 {
	H := ws.H.RowView(n)
	return floats.Max([]float64{floats.Max(H), -floats.Min(H)})
}
