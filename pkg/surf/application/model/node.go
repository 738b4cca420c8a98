package model

type NodeID = string

type Node struct {
	ID   NodeID
	Host string
}
