package subscription

import "github.com/VitaminP8/bloccit/api/model"

type Manager interface {
	Subscribe(postID string) (<-chan *model.Score, func())
	Publish(postID string, score *model.Score)
}
