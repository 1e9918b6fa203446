package debug_utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gorustyt/polynav/common"
)

// DuDumpNavTrisToObj writes the triangles as a Wavefront OBJ mesh. Equal
// positions share one vertex.
func DuDumpNavTrisToObj(tris DuNavTris, w io.Writer) error {
	if w == nil || tris == nil {
		return errors.New("dump nav tris: nil input")
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("# Nav mesh\n")
	bw.WriteString("o NavMesh\n")
	bw.WriteString("\n")

	index := map[common.Vec3]int{}
	faces := make([][3]int, 0, tris.TriCount())
	vert := func(v common.Vec3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(index) + 1
		index[v] = i
		fmt.Fprintf(bw, "v %f %f %f\n", v[0], v[1], v[2])
		return i
	}
	for i := 0; i < tris.TriCount(); i++ {
		a, b, c := tris.TriVerts(i)
		faces = append(faces, [3]int{vert(a), vert(b), vert(c)})
	}

	bw.WriteString("\n")
	for _, f := range faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2])
	}
	return bw.Flush()
}
