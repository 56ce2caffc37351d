package redis

import "github.com/mcoot/sosgame/internal/model"

// keyPrefix namespaces every key this package writes
const keyPrefix = "sosgame:game:"

func gameKey(id model.GameID) string {
	return keyPrefix + string(id)
}
