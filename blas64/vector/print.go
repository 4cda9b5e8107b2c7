package vector

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Dump renders vec as "[e0; e1; ...]".
func Dump(vec blas64.Vector) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < vec.N; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(strconv.FormatFloat(vec.Data[i*vec.Inc], 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

func Fprint(w io.Writer, vec blas64.Vector, s string) error {
	_, err := fmt.Fprintf(w, "%s%s\n", s, Dump(vec))
	return err
}

func Print(vec blas64.Vector, s string) error {
	return Fprint(os.Stdout, vec, s)
}

// Format renders vec as a column using gonum's matrix formatter.
func Format(vec blas64.Vector) string {
	d, err := ToVecDense(vec)
	if err != nil {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(d, mat.Squeeze()))
}
