package animals

import (
	"fmt"
	"math/rand/v2"
)

const (
	tagMin = 100000
	tagMax = 999999
)

// TagPrefix: "DOG" para dog, "CAT" para cualquier otro valor.
func TagPrefix(species Species) string {
	if species == SpeciesDog {
		return "DOG"
	}
	return "CAT"
}

// GenerateTagID arma el tag con el número dado (se asume en [100000, 999999]).
func GenerateTagID(species Species, n int) string {
	return fmt.Sprintf("%s-%06d", TagPrefix(species), n)
}

// randomTagNumber es uniforme en [100000, 999999].
func randomTagNumber() int {
	return tagMin + rand.IntN(tagMax-tagMin+1)
}
