package app

import (
	"github.com/vk/pipegridgo/components/baseline"
	"github.com/vk/pipegridgo/components/imputer"
	"github.com/vk/pipegridgo/components/linear"
	"github.com/vk/pipegridgo/components/logtransform"
	"github.com/vk/pipegridgo/components/onehot"
	"github.com/vk/pipegridgo/components/scaler"
	"github.com/vk/pipegridgo/components/selectcolumns"
	"github.com/vk/pipegridgo/components/targetimputer"
	"github.com/vk/pipegridgo/components/undersampler"
	"github.com/vk/pipegridgo/internal/component"
)

// coreModules is the definitive list of all component packages that are
// compiled into the pipegridgo binary.
var coreModules = []component.Module{
	&imputer.Module{},
	&onehot.Module{},
	&scaler.Module{},
	&selectcolumns.Module{},
	&undersampler.Module{},
	&targetimputer.Module{},
	&logtransform.Module{},
	&baseline.Module{},
	&linear.Module{},
}
