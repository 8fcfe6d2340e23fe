package relay

import (
	"github.com/sirupsen/logrus"

	"cloudadvisor/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
