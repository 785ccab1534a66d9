package systems

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// SelectedTileColor 带选中标记的格子颜色
var SelectedTileColor = color.RGBA{R: 90, G: 200, B: 120, A: 255}

// 立方体侧面的明暗系数
const (
	leftFaceShade  = 0.75
	rightFaceShade = 0.55
)

// whiteSubImage DrawTriangles 使用的纯白纹理，首次绘制时创建
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// drawItem 一个待绘制的实体
type drawItem struct {
	id       ecs.EntityID
	position components.Vec3
	visual   *components.VisualComponent
	selected bool
	col, row int
	isTile   bool
}

// RenderSystem 以等距视角绘制格子、玩家和悬停指示器
type RenderSystem struct {
	entityManager *ecs.EntityManager
	labelFace     text.Face

	// ShowCoordinates 是否在格子上绘制坐标
	ShowCoordinates bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		labelFace:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// collect 收集所有可绘制实体并按绘制顺序排序
//
// 顺序: 先绘制所有格子，再按深度 (x+z) 从远到近绘制立方体，
// 深度相同时先低后高、先小层级后大层级
func (s *RenderSystem) collect() []drawItem {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.VisualComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)
		item := drawItem{
			id:       id,
			position: transform.Position,
			visual:   visual,
			isTile:   visual.Shape == components.ShapeTile,
		}
		if tile, ok := ecs.GetComponent[*components.GridTileComponent](s.entityManager, id); ok {
			item.selected = tile.Selected
			item.col, item.row = tile.Col, tile.Row
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.isTile != b.isTile {
			return a.isTile
		}
		da, db := a.position.X+a.position.Z, b.position.X+b.position.Z
		if da != db {
			return da < db
		}
		if a.position.Y != b.position.Y {
			return a.position.Y < b.position.Y
		}
		if a.visual.Layer != b.visual.Layer {
			return a.visual.Layer < b.visual.Layer
		}
		return a.id < b.id
	})
	return items
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image, proj utils.Projection) {
	items := s.collect()
	for _, item := range items {
		if item.isTile {
			s.drawTile(screen, proj, item)
		} else {
			s.drawCube(screen, proj, item)
		}
	}

	if s.ShowCoordinates {
		for _, item := range items {
			if item.isTile {
				s.drawTileLabel(screen, proj, item)
			}
		}
	}
}

func (s *RenderSystem) drawTile(screen *ebiten.Image, proj utils.Projection, item drawItem) {
	p := item.position
	pts := proj.TileDiamond(p.X, p.Y, p.Z, item.visual.Size)
	c := item.visual.Color
	if item.selected {
		c = SelectedTileColor
	}
	fillQuad(screen, pts, c, 1)

	if item.selected {
		for i := 0; i < 4; i++ {
			a, b := pts[i], pts[(i+1)%4]
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 2, color.White, true)
		}
	}
}

// drawCube 绘制以 position 为中心的立方体（顶面 + 朝向镜头的两个侧面）
func (s *RenderSystem) drawCube(screen *ebiten.Image, proj utils.Projection, item drawItem) {
	top, left, right := CubeFaces(proj, item.position, item.visual.Size)
	c := item.visual.Color
	fillQuad(screen, left, c, leftFaceShade)
	fillQuad(screen, right, c, rightFaceShade)
	fillQuad(screen, top, c, 1)
}

// CubeFaces 计算立方体可见的三个面的屏幕坐标
// 每个面按顺时针给出四个顶点
func CubeFaces(proj utils.Projection, center components.Vec3, size float64) (top, left, right [4][2]float64) {
	h := size / 2
	t := proj.TileDiamond(center.X, center.Y+h, center.Z, size)
	b := proj.TileDiamond(center.X, center.Y-h, center.Z, size)

	top = t
	left = [4][2]float64{t[3], t[2], b[2], b[3]}
	right = [4][2]float64{t[2], t[1], b[1], b[2]}
	return top, left, right
}

func (s *RenderSystem) drawTileLabel(screen *ebiten.Image, proj utils.Projection, item drawItem) {
	x, y := proj.WorldToScreen(item.position.X, item.position.Y, item.position.Z)
	label := fmt.Sprintf("%d,%d", item.col, item.row)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	if (item.col+item.row)%2 == 0 {
		opts.ColorScale.ScaleWithColor(color.Black)
	} else {
		opts.ColorScale.ScaleWithColor(color.White)
	}
	text.Draw(screen, label, s.labelFace, opts)
}

// fillQuad 用两个三角形填充四边形
func fillQuad(screen *ebiten.Image, pts [4][2]float64, c color.RGBA, shade float32) {
	r := float32(c.R) / 255 * shade
	g := float32(c.G) / 255 * shade
	b := float32(c.B) / 255 * shade
	a := float32(c.A) / 255

	vertices := make([]ebiten.Vertex, 4)
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}
	screen.DrawTriangles(vertices, indices, whiteTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
