// Package splat loads Gaussian splat point clouds from PLY files and manages
// their load lifecycle. Only the vertex positions and colors are used; the
// cloud is rendered as points and is scenery, not collision geometry.
package splat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// shC0 is the zeroth spherical-harmonic basis constant. Gaussian splat PLYs
// store base color as SH DC terms (f_dc_0..2); color = 0.5 + shC0 * dc.
const shC0 = 0.28209479177387814

// Cloud is a loaded point cloud.
type Cloud struct {
	Name   string
	Points []rl.Vector3
	Colors []rl.Color
}

// Bounds returns the axis-aligned bounding box of the cloud.
func (c *Cloud) Bounds() rl.BoundingBox {
	if len(c.Points) == 0 {
		return rl.BoundingBox{}
	}
	min := c.Points[0]
	max := c.Points[0]
	for _, p := range c.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return rl.NewBoundingBox(min, max)
}

// Draw renders the cloud as points. Call between BeginMode3D and EndMode3D.
func (c *Cloud) Draw() {
	for i, p := range c.Points {
		rl.DrawPoint3D(p, c.Colors[i])
	}
}

// plyType is the wire representation of a scalar vertex property.
type plyType struct {
	size   int
	float  bool // float or double
	signed bool // signed integer
}

// plyProperty is one declared vertex property, in declaration order.
type plyProperty struct {
	name string
	plyType
}

type plyHeader struct {
	binary      bool
	vertexCount int
	properties  []plyProperty
}

var plyTypes = map[string]plyType{
	"char": {size: 1, signed: true}, "int8": {size: 1, signed: true},
	"uchar": {size: 1}, "uint8": {size: 1},
	"short": {size: 2, signed: true}, "int16": {size: 2, signed: true},
	"ushort": {size: 2}, "uint16": {size: 2},
	"int": {size: 4, signed: true}, "int32": {size: 4, signed: true},
	"uint": {size: 4}, "uint32": {size: 4},
	"float": {size: 4, float: true}, "float32": {size: 4, float: true},
	"double": {size: 8, float: true}, "float64": {size: 8, float: true},
}

// Parse reads a PLY point cloud from path. ASCII and binary little-endian
// formats are supported; properties beyond position and color are skipped.
func Parse(path string) (*Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 1<<20)
	header, err := parseHeader(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cloud := &Cloud{
		Name:   filepath.Base(path),
		Points: make([]rl.Vector3, 0, header.vertexCount),
		Colors: make([]rl.Color, 0, header.vertexCount),
	}
	if header.binary {
		err = readBinaryVertices(r, header, cloud)
	} else {
		err = readASCIIVertices(r, header, cloud)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cloud, nil
}

func parseHeader(r *bufio.Reader) (*plyHeader, error) {
	magic, err := readHeaderLine(r)
	if err != nil {
		return nil, err
	}
	if magic != "ply" {
		return nil, fmt.Errorf("not a PLY file")
	}

	h := &plyHeader{}
	inVertex := false
	sawVertex := false
	for {
		line, err := readHeaderLine(r)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed format line")
			}
			switch fields[1] {
			case "ascii":
				h.binary = false
			case "binary_little_endian":
				h.binary = true
			default:
				return nil, fmt.Errorf("unsupported format %q", fields[1])
			}
		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed element line")
			}
			inVertex = fields[1] == "vertex"
			if inVertex {
				sawVertex = true
				n, err := strconv.Atoi(fields[2])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("bad vertex count %q", fields[2])
				}
				h.vertexCount = n
			}
		case "property":
			if !inVertex || len(fields) < 3 {
				continue
			}
			if fields[1] == "list" {
				return nil, fmt.Errorf("list property on vertex element")
			}
			typ, ok := plyTypes[fields[1]]
			if !ok {
				return nil, fmt.Errorf("unknown property type %q", fields[1])
			}
			h.properties = append(h.properties, plyProperty{name: fields[2], plyType: typ})
		case "comment", "obj_info":
			// skip
		case "end_header":
			if !sawVertex {
				return nil, fmt.Errorf("no vertex element")
			}
			return h, nil
		}
	}
}

func readHeaderLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// vertexChannels maps property names to the cloud fields we keep.
type vertexChannels struct {
	x, y, z       float32
	r, g, b       float32
	hasRGB        bool
	hasDC         bool
	dc0, dc1, dc2 float32
}

func (vc *vertexChannels) set(name string, value float32) {
	switch name {
	case "x":
		vc.x = value
	case "y":
		vc.y = value
	case "z":
		vc.z = value
	case "red":
		vc.r, vc.hasRGB = value, true
	case "green":
		vc.g = value
	case "blue":
		vc.b = value
	case "f_dc_0":
		vc.dc0, vc.hasDC = value, true
	case "f_dc_1":
		vc.dc1 = value
	case "f_dc_2":
		vc.dc2 = value
	}
}

func (vc *vertexChannels) color() rl.Color {
	if vc.hasRGB {
		return rl.NewColor(uint8(clampByte(vc.r)), uint8(clampByte(vc.g)), uint8(clampByte(vc.b)), 255)
	}
	if vc.hasDC {
		return rl.NewColor(
			uint8(clampByte((0.5+shC0*vc.dc0)*255)),
			uint8(clampByte((0.5+shC0*vc.dc1)*255)),
			uint8(clampByte((0.5+shC0*vc.dc2)*255)),
			255,
		)
	}
	return rl.White
}

func clampByte(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return f
}

func readBinaryVertices(r *bufio.Reader, h *plyHeader, cloud *Cloud) error {
	stride := 0
	for _, p := range h.properties {
		stride += p.size
	}
	buf := make([]byte, stride)
	for i := 0; i < h.vertexCount; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("vertex %d: %w", i, err)
		}
		var vc vertexChannels
		off := 0
		for _, p := range h.properties {
			var value float32
			switch {
			case p.float && p.size == 4:
				value = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
			case p.float && p.size == 8:
				value = float32(math.Float64frombits(binary.LittleEndian.Uint64(buf[off:])))
			case p.size == 1 && p.signed:
				value = float32(int8(buf[off]))
			case p.size == 1:
				value = float32(buf[off])
			case p.size == 2 && p.signed:
				value = float32(int16(binary.LittleEndian.Uint16(buf[off:])))
			case p.size == 2:
				value = float32(binary.LittleEndian.Uint16(buf[off:]))
			case p.size == 4 && p.signed:
				value = float32(int32(binary.LittleEndian.Uint32(buf[off:])))
			case p.size == 4:
				value = float32(binary.LittleEndian.Uint32(buf[off:]))
			}
			vc.set(p.name, value)
			off += p.size
		}
		cloud.Points = append(cloud.Points, rl.NewVector3(vc.x, vc.y, vc.z))
		cloud.Colors = append(cloud.Colors, vc.color())
	}
	return nil
}

func readASCIIVertices(r *bufio.Reader, h *plyHeader, cloud *Cloud) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for i := 0; i < h.vertexCount; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("vertex %d: %w", i, err)
			}
			return fmt.Errorf("vertex %d: unexpected end of file", i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < len(h.properties) {
			return fmt.Errorf("vertex %d: expected %d values, got %d", i, len(h.properties), len(fields))
		}
		var vc vertexChannels
		for j, p := range h.properties {
			value, err := strconv.ParseFloat(fields[j], 32)
			if err != nil {
				return fmt.Errorf("vertex %d: %w", i, err)
			}
			vc.set(p.name, float32(value))
		}
		cloud.Points = append(cloud.Points, rl.NewVector3(vc.x, vc.y, vc.z))
		cloud.Colors = append(cloud.Colors, vc.color())
	}
	return nil
}
