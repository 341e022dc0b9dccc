// Package render turns a solved decomposition into artifacts people can look
// at: a PNG overlay and a GeoJSON feature collection.
//
// PNG overlay (Solution):
//
//   - The input bitmap is copied to RGBA.
//   - Every node rectangle is filled with NodeColor (green by default).
//   - Rectangles on the path are then filled with PathColor (red by default),
//     so the route stays visible on top of the decomposition.
//
// GeoJSON (FeatureCollection):
//
//   - One Polygon feature per node, in cell coordinates with y growing down.
//   - Properties: id, area, on_path, and role ("start", "goal" or omitted).
//   - One LineString feature joining the centers of the path rectangles.
package render
