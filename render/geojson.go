package render

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
)

// FeatureCollection exports node rectangles and the path as GeoJSON features.
// start and goal may be graph.NoNode to omit their roles.
func FeatureCollection(nodes map[graph.NodeID]geom.Rect, path []graph.NodeID, start, goal graph.NodeID) *geojson.FeatureCollection {
	onPath := make(map[graph.NodeID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	ids := make([]graph.NodeID, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fc := geojson.NewFeatureCollection()
	for _, id := range ids {
		r := nodes[id]
		f := geojson.NewFeature(bound(r).ToPolygon())
		f.ID = uint32(id)
		f.Properties["id"] = uint32(id)
		f.Properties["area"] = r.Area()
		f.Properties["on_path"] = onPath[id]
		switch id {
		case start:
			f.Properties["role"] = "start"
		case goal:
			f.Properties["role"] = "goal"
		}
		fc.Append(f)
	}

	if len(path) > 0 {
		line := make(orb.LineString, 0, len(path))
		for _, id := range path {
			if r, ok := nodes[id]; ok {
				line = append(line, bound(r).Center())
			}
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "path"
		f.Properties["hops"] = len(path) - 1
		fc.Append(f)
	}
	return fc
}

// MarshalGeoJSON is FeatureCollection encoded to JSON.
func MarshalGeoJSON(nodes map[graph.NodeID]geom.Rect, path []graph.NodeID, start, goal graph.NodeID) ([]byte, error) {
	data, err := FeatureCollection(nodes, path, start, goal).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("render: marshal geojson: %w", err)
	}
	return data, nil
}

func bound(r geom.Rect) orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(r.Min.X), float64(r.Min.Y)},
		Max: orb.Point{float64(r.Max.X), float64(r.Max.Y)},
	}
}
