package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/myragen/compiler/load"
)

func TestNewLayout(t *testing.T) {
	ws := []*load.Widget{{ID: "Title", Element: "Label", Field: "Title"}}
	l := NewLayout(load.NewCandidate(`Content\UI\TitleScreen.xml`, ""), "MyGame.UI", ws)

	assert.Equal(t, "TitleScreen", l.Name)
	assert.Equal(t, `Content\UI\TitleScreen.xml`, l.Path)
	assert.Equal(t, "MyGame.UI", l.Namespace)
	assert.Equal(t, ws, l.Widgets)
	assert.Equal(t, "TitleScreenUI", l.ClassName())
	assert.Equal(t, "TitleScreen.xml", l.SourceFile())
	assert.Equal(t, "TitleScreenUI.g.txt", l.FileName(stubDialect{}))
}

func TestLayoutNameKeepsInnerDots(t *testing.T) {
	l := NewLayout(load.NewCandidate("Content/UI/Main.Menu.xml", ""), DefaultNamespace, nil)
	assert.Equal(t, "Main.Menu", l.Name)
	assert.Equal(t, "Main.MenuUI", l.ClassName())
}

func TestDialectInterface(t *testing.T) {
	var d Dialect = stubDialect{}
	assert.Equal(t, "stub", d.Name())
	assert.Equal(t, ".g.txt", d.Ext())
}
