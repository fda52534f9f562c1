package analysis

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand - потокобезопасный источник случайных чисел с фиксируемым зерном
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand создает источник; seed == 0 означает зерно от текущего времени
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN возвращает равномерное целое в [0, n)
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

// Float64 возвращает равномерное число в [0, 1)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}
