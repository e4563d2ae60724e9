package gridgraph

const (
	// gridWidth and gridHeight are the lon/lat bucket grid's dimensions:
	// one bucket per whole degree.
	gridWidth  = 360
	gridHeight = 180
)

// NodeGrid buckets node ids into a row-major grid of one-degree lon/lat
// cells. Width and Height are fixed at gridWidth/gridHeight;
// Cells[y*Width+x] holds the ids of every node falling in cell (x, y).
type NodeGrid struct {
	Width, Height int
	Cells         [][]uint32
}
