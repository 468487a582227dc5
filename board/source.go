package board

// Source supplies the randomness a round consumes: coin flips for
// equal-skill encounters and cell draws for scattering. *math/rand.Rand
// satisfies it; tests substitute scripted values. Resolution is fully
// deterministic given a fixed Source.
type Source interface {
	Intn(n int) int
}
