package system

type State struct{}
