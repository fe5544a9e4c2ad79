package util

import (
	"math"
	"math/rand"
	"sort"
)

// Panics if there is an error, otherwise returns the result
func Try[T any](result T, err error) T {
	CheckErr(err)
	return result
}

// Panics if error is not null
func CheckErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Computes a percentile (0-100) from an array
func Percentile(a []float64, p int) float64 {
	if len(a) == 0 {
		return math.NaN()
	}
	if len(a) == 1 {
		return a[0]
	}

	sort.Slice(a, func(i, j int) bool {
		return a[i] < a[j]
	})

	r := (float64(p)/100)*float64(len(a)) - 1

	if r == float64(int(r)) {
		return a[int(r)]
	} else {
		ri := int(r)
		rf := r - float64(ri)
		return a[ri] + rf*(a[ri+1]-a[ri])
	}
}

// Computes the mean of an array
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return math.NaN()
	}

	var total float64
	for _, v := range a {
		total += v
	}
	return total / float64(len(a))
}

const alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Returns a random alphanumeric string with 'length' bytes
func RandomString(rng *rand.Rand, length int) string {
	var s = make([]byte, length)
	for i := 0; i < length; i++ {
		s[i] = alphanumerics[rng.Intn(len(alphanumerics))]
	}
	return string(s)
}
