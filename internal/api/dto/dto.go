package dto

type NoContent struct{}
