package repository

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"
)

type cloudStorageTestSuite struct {
	suite.Suite
	client          *storage.Client
	bucketName      string
	bucketUrl       string
	testingMetadata []byte
	testingFolder   string
}

func (suite *cloudStorageTestSuite) SetupSuite() {
	ctx := bCtx.Background()
	metadataStr := `{"name":"Acme","description":"two year warranty","image":"ipfs://QmaByv7H1UCwpDpgSeMqga3hMGmuGzsrgyq9FU3S9JkkF5","productSerialNo":"SN-0001","additionalData":"{\"color\":\"red\"}"}`
	client, err := storage.NewClient(ctx)
	suite.NoError(err)

	suite.client = client
	suite.bucketName = "dev-metadata.warrantify.io"
	suite.bucketUrl = "https://dev-metadata.warrantify.io"
	suite.testingMetadata = []byte(metadataStr)
	suite.testingFolder = "testing"
}

func (suite *cloudStorageTestSuite) TearDownSuite() {
	ctx := bCtx.Background()
	query := &storage.Query{Prefix: suite.testingFolder}
	bucket := suite.client.Bucket(suite.bucketName)
	it := bucket.Objects(ctx, query)
	for {
		attr, err := it.Next()
		if err == iterator.Done {
			break
		}
		suite.NoError(err)
		err = bucket.Object(attr.Name).Delete(ctx)
		suite.NoError(err)
	}
	err := suite.client.Close()
	suite.NoError(err)
}

func TestCloudStorageWriterRepo(t *testing.T) {
	t.Skip("requires google cloud storage auth")
	suite.Run(t, new(cloudStorageTestSuite))
}

func (suite *cloudStorageTestSuite) Test_cloudStorageWriterRepo_Store() {
	req := require.New(suite.T())
	ctx := bCtx.Background()

	contentPath := fmt.Sprintf("%s/0x000000000000000000000000000000000000000a/SN-0001.json", suite.testingFolder)
	expectedUrl := fmt.Sprintf("%s/%s", suite.bucketUrl, contentPath)
	cs, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		Client:     suite.client,
		BucketName: suite.bucketName,
		Timeout:    10 * time.Second,
		Url:        suite.bucketUrl,
	})
	req.NoError(err)
	url, err := cs.Store(ctx, contentPath, suite.testingMetadata, "application/json")
	req.NoError(err)
	req.Equal(expectedUrl, url)

	body, err := httpGet(ctx, url)
	req.NoError(err)
	req.Equal(suite.testingMetadata, body)
}

func httpGet(ctx bCtx.Ctx, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("resp.StatusCode != 200")
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func TestCloudStorageWriterRepoBadPath(t *testing.T) {
	req := require.New(t)
	cs, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		BucketName: "unused",
		Timeout:    time.Second,
		Url:        "https://metadata.example.com",
	})
	req.NoError(err)

	_, err = cs.Store(bCtx.Background(), "%zz", []byte("{}"), "application/json")
	req.ErrorIs(err, domain.ErrBadParamInput)
}
