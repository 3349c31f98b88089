package secret

import (
	"encoding/json"
	"github.com/aws/aws-secretsmanager-caching-go/secretcache"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/secret/secretModel"
	"log"
)

func GetSecrets() secretModel.Secrets {
	secretCache, err := secretcache.New()
	if err != nil {
		log.Fatal("Error creating secret cache during bootstrap: ", err)
	}
	result, err := secretCache.GetSecretString(secretName)
	if err != nil {
		log.Fatal("Error getting secrets during bootstrap: ", err)
	}

	var secret secretModel.Secrets
	err = json.Unmarshal([]byte(result), &secret)
	if err != nil {
		log.Fatal("Error unmarshalling secrets during bootstrap: ", err)
	}
	return secret
}

const secretName = "ConnectCardBackend/secrets"
