package display

import (
	"math"
	"reflect"
	"testing"
)

type computes struct {
	vertex, edge, conn int
}

func snapshot(c *Controller) computes {
	return computes{c.vertexComputes, c.edgeComputes, c.connComputes}
}

func TestNewInitialState(t *testing.T) {
	c := New(0)
	if c.VertexCount() != 3 || c.Modulus() != 9 || c.Multiplier() != 2 {
		t.Errorf("initial parameters: V=%d M=%d K=%d", c.VertexCount(), c.Modulus(), c.Multiplier())
	}
	// 9/3 = 3 samples per side over 3 sides.
	if c.EdgePointCount() != 9 {
		t.Errorf("initial edge points: %d, want 9", c.EdgePointCount())
	}
}

func TestChangeParametersIdempotent(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(4, 100, 2, 0.5); err != nil {
		t.Fatal(err)
	}
	before := snapshot(c)
	sceneBefore := c.Scene()

	if err := c.ChangeParameters(4, 100, 2, 0.5); err != nil {
		t.Fatal(err)
	}
	if after := snapshot(c); after != before {
		t.Errorf("identical parameters recomputed: %+v -> %+v", before, after)
	}
	sceneAfter := c.Scene()
	if !reflect.DeepEqual(sceneBefore, sceneAfter) {
		t.Error("scene changed without a parameter change")
	}
}

func TestEdgeCountChangeRebuildsConnections(t *testing.T) {
	c := New(0)
	// 8/4 = 2 per side -> 8 points; 12/4 = 3 per side -> 12 points.
	if err := c.ChangeParameters(4, 8, 2, 0); err != nil {
		t.Fatal(err)
	}
	before := snapshot(c)
	if err := c.ChangeParameters(4, 12, 2, 0); err != nil {
		t.Fatal(err)
	}
	after := snapshot(c)
	if c.EdgePointCount() != 12 {
		t.Fatalf("edge points: %d, want 12", c.EdgePointCount())
	}
	if after.conn != before.conn+1 {
		t.Errorf("connection rebuild skipped despite edge count change (%d -> %d)", before.conn, after.conn)
	}
	if after.vertex != before.vertex {
		t.Errorf("vertices recomputed on a modulus-only change")
	}
}

func TestModulusChangeSameCountSkipsConnections(t *testing.T) {
	c := New(0)
	// 100/4 and 101/4 both truncate to 25 per side.
	if err := c.ChangeParameters(4, 100, 2, 0); err != nil {
		t.Fatal(err)
	}
	before := snapshot(c)
	if err := c.ChangeParameters(4, 101, 2, 0); err != nil {
		t.Fatal(err)
	}
	after := snapshot(c)
	if after.edge != before.edge+1 {
		t.Errorf("edge points not recomputed on modulus change")
	}
	if after.conn != before.conn {
		t.Errorf("connections rebuilt although the edge count stayed at %d", c.EdgePointCount())
	}
	if c.Modulus() != 101 {
		t.Errorf("stored modulus = %d, want 101", c.Modulus())
	}
}

func TestAngleOnlyChange(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(4, 100, 2, 0); err != nil {
		t.Fatal(err)
	}
	before := snapshot(c)
	if err := c.ChangeParameters(4, 100, 2, 0.3); err != nil {
		t.Fatal(err)
	}
	after := snapshot(c)
	if after.vertex != before.vertex+1 || after.edge != before.edge+1 {
		t.Errorf("angle change must move vertices and edge points: %+v -> %+v", before, after)
	}
	if after.conn != before.conn {
		t.Error("connections rebuilt although only positions moved")
	}
}

func TestMultiplierOnlyChange(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(4, 100, 2, 0); err != nil {
		t.Fatal(err)
	}
	before := snapshot(c)
	if err := c.ChangeParameters(4, 100, 3, 0); err != nil {
		t.Fatal(err)
	}
	after := snapshot(c)
	if after.vertex != before.vertex || after.edge != before.edge {
		t.Errorf("geometry recomputed on a multiplier-only change: %+v -> %+v", before, after)
	}
	if after.conn != before.conn+1 {
		t.Error("connections not rebuilt on multiplier change")
	}
}

func TestDegenerateModulus(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(4, 3, 2, 0); err != nil {
		t.Fatal(err)
	}
	if c.EdgePointCount() != 0 {
		t.Errorf("edge points: %d, want 0", c.EdgePointCount())
	}
	scene := c.Scene()
	if len(scene.Connections) != 0 {
		t.Errorf("connections: %d, want 0", len(scene.Connections))
	}
}

func TestSceneCircleMode(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(50, 100, 2, 0); err != nil {
		t.Fatal(err)
	}
	scene := c.Scene()
	if !scene.Circle {
		t.Fatal("expected circle mode")
	}
	if scene.Vertices != nil {
		t.Errorf("circle scene carries %d vertices", len(scene.Vertices))
	}
	if w := scene.Bounds.Width(); math.Abs(w-1080) > 1e-9 {
		t.Errorf("circle bounding box width %v, want 1080", w)
	}
	if len(scene.EdgePoints) != 100 {
		t.Errorf("edge points: %d, want 100", len(scene.EdgePoints))
	}
	if scene.Caption != "Modular multiplication circle, M=100, K=2" {
		t.Errorf("caption %q", scene.Caption)
	}
}

func TestScenePolygonCaption(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(4, 100, 2, 0); err != nil {
		t.Fatal(err)
	}
	scene := c.Scene()
	if scene.Circle {
		t.Fatal("expected polygon mode")
	}
	if scene.Caption != "Modular multiplication polygon, V=4, M=100, K=2" {
		t.Errorf("caption %q", scene.Caption)
	}
	if len(scene.Vertices) != 4 {
		t.Errorf("vertices: %d, want 4", len(scene.Vertices))
	}
}

func TestConnectionSelfLoop(t *testing.T) {
	c := New(0)
	if err := c.ChangeParameters(4, 100, 7, 0); err != nil {
		t.Fatal(err)
	}
	scene := c.Scene()
	if len(scene.Connections) == 0 || scene.Connections[0] != [2]int{0, 0} {
		t.Errorf("index 0 must self-loop, got %v", scene.Connections[:1])
	}
}
