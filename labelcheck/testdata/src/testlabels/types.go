package testlabels

type Regular struct{}
