package render

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/alloviz/alloviz/scene"
	"github.com/alloviz/alloviz/spatialmath"
)

func makeScenes(t *testing.T) (*scene.Scene, *scene.Scene) {
	t.Helper()
	cfg := scene.Config{
		NumBoxes:   3,
		BoxDims:    r3.Vector{X: 1, Y: 1, Z: 1},
		Spacing:    2,
		Distance:   8,
		ArcSpanDeg: 90,
		Rotation:   spatialmath.RandomOrientation(rand.New(rand.NewSource(9))),
		FaceRand:   rand.New(rand.NewSource(10)),
	}
	egoScene, err := scene.Line(cfg)
	test.That(t, err, test.ShouldBeNil)
	alloScene, err := scene.Arc(cfg)
	test.That(t, err, test.ShouldBeNil)
	return egoScene, alloScene
}

func TestHTML(t *testing.T) {
	egoScene, alloScene := makeScenes(t)

	var buf bytes.Buffer
	err := HTML(&buf, egoScene, alloScene)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, buf.Len(), test.ShouldBeGreaterThan, 0)

	out := buf.String()
	test.That(t, strings.Contains(out, "echarts"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "egocentric"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "allocentric"), test.ShouldBeTrue)
}

func TestHTMLErrors(t *testing.T) {
	var buf bytes.Buffer
	err := HTML(&buf)
	test.That(t, err, test.ShouldNotBeNil)

	err = HTML(&buf, &scene.Scene{Label: "empty"})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBEV(t *testing.T) {
	_, alloScene := makeScenes(t)

	var buf bytes.Buffer
	err := BEV(&buf, alloScene)
	test.That(t, err, test.ShouldBeNil)
	// PNG magic number
	test.That(t, buf.Len(), test.ShouldBeGreaterThan, 8)
	test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), test.ShouldBeTrue)
}

func TestBEVErrors(t *testing.T) {
	var buf bytes.Buffer
	err := BEV(&buf, nil)
	test.That(t, err, test.ShouldNotBeNil)
	err = BEV(&buf, &scene.Scene{Label: "empty"})
	test.That(t, err, test.ShouldNotBeNil)
}
